// Package file inspects uploaded multipart files: content-based MIME
// detection, extension lookup and media-category checks.
//
// Detection reads at most the first 512 bytes of a file and relies on
// http.DetectContentType, so a renamed executable is not accepted as an image
// just because its name ends in ".png". When a file cannot be opened or its
// content is inconclusive, category checks fall back to the extension.
//
//	if file.IsImage(fh) && fh.Size <= 5<<20 {
//	    // accept avatar
//	}
package file
