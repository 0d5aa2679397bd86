package image

var SupportedExtensions = []string{
	".png",
	".jpg",
	".jpeg",

	".gif",
	".webp",
	".tiff",
	".bmp",
}

var SupportedMimeTypes = []string{
	"image/png",
	"image/jpeg",

	"image/gif",
	"image/webp",
	"image/tiff",
	"image/bmp",
}
