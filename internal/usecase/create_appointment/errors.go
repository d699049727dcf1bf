package create_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrPastDate возвращается, когда нормализованная дата записи уже в прошлом
	ErrPastDate = errors.New("create_appointment: appointment date is in the past")

	// ErrSelfBooking возвращается при попытке записаться к самому себе
	ErrSelfBooking = errors.New("create_appointment: user cannot book an appointment with himself")

	// ErrOutsideBusinessHours возвращается, когда час начала слота вне рабочего окна
	ErrOutsideBusinessHours = errors.New("create_appointment: appointment is outside business hours")

	// ErrSlotAlreadyBooked возвращается, когда слот провайдера на этот час уже занят
	ErrSlotAlreadyBooked = errors.New("create_appointment: slot is already booked")

	// ErrStorage возвращается при ошибках чтения или записи в хранилище
	ErrStorage = errors.New("create_appointment: storage failure")
)
