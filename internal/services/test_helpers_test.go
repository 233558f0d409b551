package services_test

import (
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/pkg/logger"
)

func init() {
	// Initialize logger for tests
	if err := logger.Initialize(logger.Config{
		Level:       "debug",
		Environment: "development",
	}); err != nil {
		panic(err)
	}
}
