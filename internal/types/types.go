package types

import (
	"errors"
	"fmt"
	"time"
)

// Stock is one resolved row of a screen table.
type Stock struct {
	Name      string
	Link      string
	Price     string
	RSI       string
	QtrProfit string
	FIIChange string
}

// Screen is the outcome of processing one configured source.
type Screen struct {
	URL    string
	Name   string
	Stocks []Stock
	Err    *SourceError
}

// Names returns the display names of the screen's stocks in table order.
func (s Screen) Names() []string {
	names := make([]string, 0, len(s.Stocks))
	for _, st := range s.Stocks {
		names = append(names, st.Name)
	}
	return names
}

type Announcement struct {
	Company string
	Link    string
	Text    string
}

// Alert is one message-worthy item plus the identifier that marks it as sent.
type Alert struct {
	ID        string
	Heading   string
	Text      string
	Link      string
	LinkLabel string
	Keywords  []string
}

type Headline struct {
	Title     string
	Link      string
	Published time.Time
}

type ErrorKind int

const (
	KindOther ErrorKind = iota
	KindNetwork
	KindParse
	KindAuthExpired
	KindDownstream
)

func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindParse:
		return "parse"
	case KindAuthExpired:
		return "auth-expired"
	case KindDownstream:
		return "downstream"
	default:
		return "other"
	}
}

// SourceError ties a failure to the source that produced it so it can be
// rendered into the outgoing message instead of aborting the run.
type SourceError struct {
	Kind   ErrorKind
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s on %s: %v", e.Kind, e.Source, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// NewSourceError wraps err with a kind. An err that already carries a
// SourceError is returned as-is so its kind is kept.
func NewSourceError(kind ErrorKind, source string, err error) *SourceError {
	var se *SourceError
	if errors.As(err, &se) {
		return se
	}
	return &SourceError{Kind: kind, Source: source, Err: err}
}

// AsSourceError classifies any error, defaulting to KindOther.
func AsSourceError(source string, err error) *SourceError {
	if err == nil {
		return nil
	}
	return NewSourceError(KindOther, source, err)
}
