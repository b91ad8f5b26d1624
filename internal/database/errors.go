package database

import (
	"errors"
	"fmt"
)

var (
	ErrPlanNotFound    = errors.New("no training plan stored")
	ErrBackupEncrypted = errors.New("backup is encrypted")
	ErrWrongPassphrase = errors.New("incorrect passphrase")
	ErrInvalidBackup   = errors.New("backup file is not valid")
)

// Entity names the kind of record an operation touched.
type Entity string

const (
	EntityDatabase Entity = "database"
	EntityPlan     Entity = "plan"
	EntitySetting  Entity = "setting"
	EntityBackup   Entity = "backup"
)

type OpError struct {
	Op       string
	Resource Entity
	ID       string
	Err      error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.ID != "" {
		return fmt.Sprintf("%s %s %s: %v", e.Op, e.Resource, e.ID, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Resource, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapErr(resource Entity, op, id string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: resource, ID: id, Err: err}
}
