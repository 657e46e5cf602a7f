package services

import (
	"errors"

	"tracking/internal/core/domain/model/travel"
)

var (
	ErrStoreNotFound                = errors.New("store not found")
	ErrNoStoreNearby                = errors.New("no store nearby")
	ErrTimestampBeforeStoreCreation = errors.New("timestamp is before store creation")
	ErrReentryTooSoon               = errors.New("reentry too soon")
)

// RejectionReason tells why a ping did not produce a travel record.
type RejectionReason int

const (
	NotRejected RejectionReason = iota
	StoreNotFound
	NoStoreNearby
	TimestampBeforeStoreCreation
	ReentryTooSoon
)

func (r RejectionReason) String() string {
	switch r {
	case NotRejected:
		return "NotRejected"
	case StoreNotFound:
		return "StoreNotFound"
	case NoStoreNearby:
		return "NoStoreNearby"
	case TimestampBeforeStoreCreation:
		return "TimestampBeforeStoreCreation"
	case ReentryTooSoon:
		return "ReentryTooSoon"
	default:
		return "Unknown"
	}
}

// Err maps the reason to its sentinel error, nil for NotRejected.
func (r RejectionReason) Err() error {
	switch r {
	case NotRejected:
		return nil
	case StoreNotFound:
		return ErrStoreNotFound
	case NoStoreNearby:
		return ErrNoStoreNearby
	case TimestampBeforeStoreCreation:
		return ErrTimestampBeforeStoreCreation
	case ReentryTooSoon:
		return ErrReentryTooSoon
	default:
		return errors.New("unknown rejection reason")
	}
}

// Decision is the outcome of evaluating one ping.
// An accepted decision carries the record to append; a rejected one carries the
// reason and, when a store was matched, its name.
type Decision struct {
	record    *travel.Record
	reason    RejectionReason
	storeName string
}

func accept(record *travel.Record) Decision {
	return Decision{record: record, storeName: record.StoreName()}
}

func reject(reason RejectionReason, storeName string) Decision {
	return Decision{reason: reason, storeName: storeName}
}

func (d Decision) Accepted() bool {
	return d.record != nil
}

func (d Decision) Reason() RejectionReason {
	return d.reason
}

// Record is nil unless the decision is accepted.
func (d Decision) Record() *travel.Record {
	return d.record
}

func (d Decision) StoreName() string {
	return d.storeName
}

func (d Decision) Err() error {
	return d.reason.Err()
}
