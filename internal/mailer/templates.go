package mailer

import (
	"fmt"
	"strings"

	"LabStore/internal/model"
)

const dateLayout = "January 2, 2006 at 3:04 PM"

// StorageEmail — подтверждение приёма предмета на хранение.
func StorageEmail(it *model.Item) (subject, body string) {
	subject = "AMTC Lab - Item Stored: " + it.ObjectStored
	body = fmt.Sprintf(`Hello %s,

Your item has been successfully stored in the AMTC Lab Management System.

STORAGE DETAILS:
- Item: %s
- Tag ID: %s
- Location: %s
- Storage Period: %d days
- Expiry Date: %s

IMPORTANT REMINDERS:
- Please collect your item before the expiry date
- You will receive reminder emails as the expiry approaches
- Contact the lab if you need to extend the storage period

Thank you for using the AMTC Lab Management System!

Best regards,
AMTC Lab Team`,
		it.OwnerName, it.ObjectStored, it.UniqueID, it.Location,
		it.TimePeriod, it.ExpiryDate.Format(dateLayout))
	return subject, body
}

// ExtensionEmail — уведомление о продлении срока хранения.
func ExtensionEmail(it *model.Item, additionalDays int) (subject, body string) {
	subject = "AMTC Lab - Storage Extended: " + it.ObjectStored
	body = fmt.Sprintf(`Hello %s,

The storage period for your item has been successfully extended.

EXTENSION DETAILS:
- Item: %s
- Tag ID: %s
- Extended by: %d days
- New Expiry Date: %s

Your item is now safe for the extended period. Please collect it before the new expiry date.

Thank you for using the AMTC Lab Management System!

Best regards,
AMTC Lab Team`,
		it.OwnerName, it.ObjectStored, it.UniqueID,
		additionalDays, it.ExpiryDate.Format(dateLayout))
	return subject, body
}

// PickupEmail — подтверждение выдачи предмета.
func PickupEmail(it *model.Item) (subject, body string) {
	pickup := "unknown"
	if it.PickupDate != nil {
		pickup = it.PickupDate.Format(dateLayout)
	}
	subject = "AMTC Lab - Item Picked Up: " + it.ObjectStored
	body = fmt.Sprintf(`Hello %s,

This email confirms that your item has been successfully picked up from the AMTC Lab.

PICKUP DETAILS:
- Item: %s
- Tag ID: %s
- Original Location: %s
- Pickup Date: %s

Thank you for using the AMTC Lab Management System!

Best regards,
AMTC Lab Team`,
		it.OwnerName, it.ObjectStored, it.UniqueID, it.Location, pickup)
	return subject, body
}

// ReminderEmail — письмо плановой рассылки: за два дня до срока,
// в день срока и после просрочки. daysFromDue считается от даты срока:
// отрицательное значение — до срока, положительное — просрочка.
func ReminderEmail(it *model.Item, daysFromDue int) (subject, body string) {
	due := it.ExpiryDate.Format("January 2, 2006")

	switch {
	case daysFromDue < 0:
		subject = "AMTC Lab Storage Reminder - Item Due in 2 Days"
		body = fmt.Sprintf(`Dear %s,

This is a friendly reminder that your item stored in the AMTC Lab will be due for pickup in 2 days.

ITEM DETAILS:
- Item: %s
- Unique ID: %s
- Location: %s
- Due Date: %s
- Days Remaining: 2 days

ACTION REQUIRED:
Please plan to collect your item by the due date or extend the storage period through the AMTC Lab Management System.

Best regards,
AMTC Lab Management System
Automated Notification Service`,
			it.OwnerName, it.ObjectStored, it.UniqueID, it.Location, due)
	case daysFromDue == 0:
		subject = "AMTC Lab Storage - Item Due TODAY"
		body = fmt.Sprintf(`Dear %s,

Your item stored in the AMTC Lab is DUE FOR PICKUP TODAY.

ITEM DETAILS:
- Item: %s
- Unique ID: %s
- Location: %s
- Due Date: TODAY (%s)

IMMEDIATE ACTION REQUIRED:
Please collect your item today or extend the storage period to avoid it becoming overdue.

Best regards,
AMTC Lab Management System
Automated Notification Service`,
			it.OwnerName, it.ObjectStored, it.UniqueID, it.Location, due)
	default:
		subject = fmt.Sprintf("URGENT - AMTC Lab Storage OVERDUE (%d %s)",
			daysFromDue, plural(daysFromDue, "day"))
		body = fmt.Sprintf(`Dear %s,

URGENT: Your item stored in the AMTC Lab is now OVERDUE and requires immediate collection.

OVERDUE ITEM DETAILS:
- Item: %s
- Unique ID: %s
- Location: %s
- Original Due Date: %s
- Days Overdue: %d %s

IMMEDIATE ACTION REQUIRED:
Please collect your item immediately to avoid potential removal or disposal.

For urgent assistance, please contact the AMTC Lab team directly.

Best regards,
AMTC Lab Management System
Automated Notification Service`,
			it.OwnerName, it.ObjectStored, it.UniqueID, it.Location, due,
			daysFromDue, plural(daysFromDue, "day"))
	}
	return subject, strings.TrimSpace(body)
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
