package models

import "time"

// NotificationKind distinguishes user and admin messages
type NotificationKind string

const (
	NotificationUser  NotificationKind = "user"
	NotificationAdmin NotificationKind = "admin"
)

// Notification is the message handed to the delivery service
type Notification struct {
	Kind      NotificationKind `json:"kind"`
	UserID    string           `json:"userId,omitempty"`
	Channel   string           `json:"channel"`
	Contact   string           `json:"contact"`
	Subject   string           `json:"subject,omitempty"`
	Message   string           `json:"message"`
	CreatedAt time.Time        `json:"createdAt"`
}
