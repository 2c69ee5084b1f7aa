package message

import (
	domain "docchat-api/internal/domain/message"
)

func fromDBModel(model *Message) *domain.Message {
	var m = &domain.Message{
		ID:      model.ID,
		FileID:  model.FileID,
		OwnerID: model.OwnerID,

		Text:          model.Text,
		IsUserMessage: model.IsUserMessage,

		CreatedAt: model.CreatedAt,
	}

	return m
}

func fromDBModels(models *Messages) domain.Messages {
	ms := make(domain.Messages, len(*models))
	for idx, m := range *models {
		ms[idx] = fromDBModel(m)
	}

	return ms
}
