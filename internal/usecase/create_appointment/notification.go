package create_appointment

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// monthsGenitive названия месяцев в родительном падеже для текста уведомления
var monthsGenitive = [...]string{
	time.January:   "января",
	time.February:  "февраля",
	time.March:     "марта",
	time.April:     "апреля",
	time.May:       "мая",
	time.June:      "июня",
	time.July:      "июля",
	time.August:    "августа",
	time.September: "сентября",
	time.October:   "октября",
	time.November:  "ноября",
	time.December:  "декабря",
}

// notificationContent формирует текст уведомления провайдеру:
// день, название месяца и время нормализованной даты записи
func notificationContent(date time.Time) string {
	return fmt.Sprintf("Новая запись на %d %s в %s",
		date.Day(),
		monthsGenitive[date.Month()],
		date.Format(domain.TimeFormat),
	)
}
