package logger_test

import (
	"os"

	"github.com/picolog/picolog/logger"
)

func Example() {
	dir, _ := os.MkdirTemp("", "picolog")
	defer os.RemoveAll(dir)

	if err := logger.InitGuaranteed(dir+"/", "app", 16); err != nil {
		panic(err)
	}
	defer logger.Shutdown()

	logger.SetLevel(logger.InfoLevel)

	logger.Info().Lit("worker ").I32(3).Lit(" started").Send()
	logger.Warn().Lit("queue depth ").U64(1024).Send()

	// Below the threshold: no record is built at all.
	logger.SetLevel(logger.CritLevel)
	logger.Info().Lit("not written").Send()
}
