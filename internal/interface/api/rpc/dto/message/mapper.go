package message

import (
	"docchat-api/internal/domain/message"
)

func ToResponseMessage(mDomain message.Message) Message {
	var m = Message{
		ID:            mDomain.ID,
		Text:          mDomain.Text,
		IsUserMessage: mDomain.IsUserMessage,
		CreatedAt:     mDomain.CreatedAt,
	}

	return m
}

func ToResponsePage(pDomain message.Page) Page {
	p := Page{
		Messages:   make(Messages, len(pDomain.Messages)),
		NextCursor: pDomain.NextCursor,
	}
	for idx, m := range pDomain.Messages {
		p.Messages[idx] = ToResponseMessage(*m)
	}

	return p
}
