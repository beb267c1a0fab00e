package ports

import "time"

type MetricsProvider interface {
	IncrementHTTPRequests(method, route, status string)
	RecordHTTPRequestDuration(method, route, status string, duration time.Duration)
	SetActiveConnections(count int)

	IncrementDatabaseQueries(queryType string, success bool)
	RecordDatabaseQueryDuration(queryType string, duration time.Duration)

	IncrementUserOperations(operation string, success bool)
	IncrementPostOperations(operation string, success bool)
	IncrementEventPublishes(eventType string, success bool)

	SetServiceHealth(healthy bool)
}
