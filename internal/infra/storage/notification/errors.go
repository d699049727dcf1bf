package notification

import "errors"

var (
	// ErrInsert возвращается при ошибке вставки уведомления
	ErrInsert = errors.New("notification.repository: failed to insert notification")
)
