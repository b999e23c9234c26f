package external

import (
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/ghumash/WeatherApp/internal/mocks"
	"github.com/ghumash/WeatherApp/internal/ports"
)

// newQuietLogger accepts any log call not matched by an earlier expectation
func newQuietLogger(t *testing.T) *mocks.Logger {
	logger := mocks.NewLogger(t)
	allowAnyLogging(logger)
	return logger
}

func allowAnyLogging(logger *mocks.Logger) {
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
}

func newNamedGateway(t *testing.T, name string) *mocks.WeatherGateway {
	gateway := mocks.NewWeatherGateway(t)
	gateway.EXPECT().GetGatewayName().Return(name).Maybe()
	return gateway
}

func fieldMap(fields []ports.Field) map[string]interface{} {
	out := make(map[string]interface{}, len(fields))
	for _, field := range fields {
		out[field.Key] = field.Value
	}
	return out
}

// captureFields stores the fields of the matched log call into dst
func captureFields(dst *map[string]interface{}) func(string, ...ports.Field) {
	return func(_ string, fields ...ports.Field) {
		*dst = fieldMap(fields)
	}
}
