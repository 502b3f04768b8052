// Package testtypes defines the fixture services used in container tests.
package testtypes

// Logger is the dependency most fixtures share.
type Logger interface {
	Log(msg string)
}

// LoggerImpl is the standard Logger fixture.
type LoggerImpl struct {
	Messages []string
}

func NewLogger() *LoggerImpl {
	return &LoggerImpl{}
}

func (l *LoggerImpl) Log(msg string) {
	l.Messages = append(l.Messages, msg)
}

// MockLogger stands in for a LoggerImpl in override tests.
type MockLogger struct {
	Messages []string
}

func (l *MockLogger) Log(msg string) {
	l.Messages = append(l.Messages, msg)
}

// APIService depends on a Logger supplied by the container.
type APIService struct {
	Logger Logger
}

func NewAPIService(logger Logger) *APIService {
	return &APIService{Logger: logger}
}

// Widget is a fixture for transient scopes; N tells instances apart.
type Widget struct {
	N int
}

// WidgetFactory numbers the Widgets it builds.
type WidgetFactory struct {
	count int
}

func (f *WidgetFactory) New() *Widget {
	w := &Widget{N: f.count}
	f.count++
	return w
}
