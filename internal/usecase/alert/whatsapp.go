package alert

import (
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode"

	"github.com/barberrock/booking-api/internal/models"
)

const shopName = "BarberRock"

// WhatsAppURL builds the click-to-chat link an admin uses to confirm a new
// booking. It returns nil when the contact phone has no digits.
func WhatsAppURL(ap models.Appointment, loc *time.Location) *string {
	phone := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, ap.ContactPhone)
	if phone == "" {
		return nil
	}

	name := ap.ContactName
	if name == "" {
		name = "Cliente"
	}

	start := ap.StartTime.In(loc)
	msg := fmt.Sprintf(
		"Hola %s, gracias por agendar tu cita en %s el día %s a las %s",
		name, shopName, start.Format("02/01/2006"), start.Format("15:04"),
	)

	link := "https://wa.me/" + phone + "?text=" + url.PathEscape(msg)
	return &link
}
