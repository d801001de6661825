package store

import "fmt"

// ValidationError — обязательное текстовое поле пустое.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("required field %q is empty", e.Field)
}

// DuplicateKeyError — uniqueId уже занят активной записью.
type DuplicateKeyError struct {
	UniqueID string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("active item with unique id %q already exists", e.UniqueID)
}

// NotFoundError — операция над несуществующим id.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("item %q not found", e.ID)
}

// InvalidAmountError — неположительное количество дней продления.
type InvalidAmountError struct {
	Amount int
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("extension amount must be positive, got %d", e.Amount)
}

// PersistenceError — сохранить не удалось ни в основное хранилище,
// ни в локальный кеш; мутация откачена.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failed for %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// ImportFormatError — файл импорта не читается целиком (неверное
// расширение, повреждён, нет данных). Частичных эффектов нет.
type ImportFormatError struct {
	Reason string
	Err    error
}

func (e *ImportFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("import file rejected: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("import file rejected: %s", e.Reason)
}

func (e *ImportFormatError) Unwrap() error { return e.Err }
