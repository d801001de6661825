package commands

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"LabStore/internal/model"
	"LabStore/internal/store"
)

// timeNow вынесено в переменную для подмены в тестах.
var timeNow = time.Now

// findItem ищет запись по uniqueId (теговый номер) или по внутреннему id.
func findItem(items []model.Item, key string) *model.Item {
	for i := range items {
		if items[i].UniqueID == key || items[i].ID == key {
			return &items[i]
		}
	}
	return nil
}

// confirm спрашивает подтверждение y/N через In.
func confirm(prompt string) bool {
	fmt.Fprintf(Out, "%s [y/N]: ", prompt)
	reader := bufio.NewReader(In)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func printItemDetails(it *model.Item) {
	fmt.Fprintf(Out, "  owner:    %s <%s>\n", it.OwnerName, it.EmailID)
	fmt.Fprintf(Out, "  object:   %s\n", it.ObjectStored)
	fmt.Fprintf(Out, "  tag:      %s\n", it.UniqueID)
	fmt.Fprintf(Out, "  location: %s\n", it.Location)
	fmt.Fprintf(Out, "  period:   %d days\n", it.TimePeriod)
	fmt.Fprintf(Out, "  expires:  %s\n", it.ExpiryDate.Format("2006-01-02 15:04"))
}

func warnDegraded(st *store.Store) {
	if st.Degraded() {
		fmt.Fprintln(Out, "! Server unavailable, changes saved to local cache only")
	}
}
