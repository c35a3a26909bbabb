package service

import "errors"

var (
	// ErrNotFound — записи с таким id нет.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidInput — некорректные входные данные на стороне вызывающего.
	ErrInvalidInput = errors.New("invalid input")
)

// StorageError — сбой хранилища (I/O, повреждение файла, нет места и т.п.).
// Текст ошибки — исходное сообщение хранилища без изменений.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return e.Err.Error() }

func (e *StorageError) Unwrap() error { return e.Err }
