package file

import (
	"docchat-api/internal/domain/file"
)

func ToResponseFile(fDomain file.File) File {
	var f = File{
		ID:           fDomain.ID,
		Key:          fDomain.Key,
		Name:         fDomain.Name,
		URL:          fDomain.URL,
		UploadStatus: string(fDomain.UploadStatus),
		MessageCount: fDomain.MessageCount,
		CreatedAt:    fDomain.CreatedAt,
	}

	return f
}

func ToResponseFiles(fsDomain file.Files) Files {
	fs := make(Files, len(fsDomain))
	for idx, f := range fsDomain {
		fs[idx] = ToResponseFile(*f)
	}

	return fs
}
