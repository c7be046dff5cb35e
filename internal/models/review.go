package models

import "time"

type Review struct {
	Author string    `json:"author,omitempty"`
	Rating int       `json:"rating,omitempty"`
	Text   string    `json:"text"`
	Time   time.Time `json:"time,omitempty"`
}
