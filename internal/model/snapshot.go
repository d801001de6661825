package model

import "time"

// Snapshot — полное состояние хранилища: обе коллекции плюс отметка времени.
// Именно в этом виде данные пишутся в локальный кеш и целиком отправляются
// на сервер при синхронизации.
type Snapshot struct {
	CurrentItems  []Item    `json:"currentItems"`
	ArchivedItems []Item    `json:"archivedItems"`
	LastUpdated   time.Time `json:"lastUpdated"`
}
