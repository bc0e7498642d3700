package session

import "github.com/creatorsconnections/tokboard/internal/models"

type NextSessionIDInput struct {
	GuildID string
}

type NextSessionIDOutput struct {
	SessionID int64
}

type SaveSessionInput struct {
	Session *models.Session
}

type GetSessionInput struct {
	GuildID   string
	SessionID int64
}
