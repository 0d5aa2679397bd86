package mupdf

var SupportedExtensions = []string{
	".pdf",
	".xps",
	".epub",
}

var SupportedMimeTypes = []string{
	"application/pdf",
	"application/x-pdf",
}
