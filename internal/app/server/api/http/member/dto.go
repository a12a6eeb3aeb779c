package member

import "churchdata/internal/domain/member"

type listOutput struct {
	Body []member.Member
}

type idInput struct {
	ID string `path:"id" example:"0b6f7a4e-3c1d-4e8a-9f21-5d2c7b8a9e10" doc:"ID записи"`
}

// createInput тело - произвольная запись, приводится к Member сервисом
type createInput struct {
	Body map[string]any
}

type updateInput struct {
	ID   string `path:"id" example:"0b6f7a4e-3c1d-4e8a-9f21-5d2c7b8a9e10" doc:"ID записи"`
	Body map[string]any
}

type output struct {
	Body *member.Member
}

type deleteOutput struct {
	Body deleteResponse
}

type deleteResponse struct {
	Message string `json:"message"`
}
