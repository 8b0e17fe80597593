package eventlog

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"fleetscaler/helpers"
	"fleetscaler/models"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"
)

// EventLog is the append-only record of decisions, lifecycle transitions
// and errors. Entries are never rewritten.
type EventLog interface {
	Append(eventType models.EventType, message string, err error, data map[string]interface{})
	Tail(n int) ([]*models.Event, error)
}

type fileEventLog struct {
	logger lager.Logger
	clock  clock.Clock
	path   string
	lock   sync.Mutex
}

func NewFileEventLog(logger lager.Logger, clock clock.Clock, path string) (EventLog, error) {
	err := os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		return nil, err
	}
	return &fileEventLog{
		logger: logger.Session("eventlog"),
		clock:  clock,
		path:   path,
	}, nil
}

func (l *fileEventLog) Append(eventType models.EventType, message string, eventErr error, data map[string]interface{}) {
	guid, err := helpers.GenerateGUID()
	if err != nil {
		l.logger.Error("failed-to-generate-event-guid", err)
	}

	event := &models.Event{
		Guid:      guid,
		Timestamp: l.clock.Now().UnixNano(),
		Type:      eventType,
		Message:   message,
		Data:      data,
	}
	if eventErr != nil {
		event.Error = eventErr.Error()
	}

	l.lock.Lock()
	defer l.lock.Unlock()

	file, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		l.logger.Error("failed-to-open-event-log", err, lager.Data{"path": l.path})
		return
	}
	defer file.Close()

	bytes, err := json.Marshal(event)
	if err != nil {
		l.logger.Error("failed-to-marshal-event", err)
		return
	}

	_, err = file.Write(append(bytes, '\n'))
	if err != nil {
		l.logger.Error("failed-to-append-event", err, lager.Data{"path": l.path})
	}
}

func (l *fileEventLog) Tail(n int) ([]*models.Event, error) {
	l.lock.Lock()
	defer l.lock.Unlock()

	file, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []*models.Event{}, nil
		}
		return nil, err
	}
	defer file.Close()

	events := []*models.Event{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		event := &models.Event{}
		if err := json.Unmarshal(scanner.Bytes(), event); err != nil {
			l.logger.Error("skipping-malformed-event-entry", err)
			continue
		}
		events = append(events, event)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if n > 0 && len(events) > n {
		events = events[len(events)-n:]
	}
	return events, nil
}
