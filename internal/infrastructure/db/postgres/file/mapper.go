package file

import (
	domain "docchat-api/internal/domain/file"
)

func fromDBModel(model *File) *domain.File {
	var f = &domain.File{
		ID:      model.ID,
		OwnerID: model.OwnerID,

		Key:          model.Key,
		Name:         model.Name,
		URL:          model.URL,
		UploadStatus: domain.UploadStatus(model.UploadStatus),
		MessageCount: model.MessageCount,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}

	return f
}

func fromDBModels(models *Files) domain.Files {
	fs := make(domain.Files, len(*models))
	for idx, f := range *models {
		fs[idx] = fromDBModel(f)
	}

	return fs
}
