package list_provider_appointments

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("list_provider_appointments: invalid input data")

	// ErrStorage возвращается при ошибках чтения из хранилища
	ErrStorage = errors.New("list_provider_appointments: storage failure")
)
