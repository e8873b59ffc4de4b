package digest

import (
	"fmt"
	"runtime"

	"github.com/rs/zerolog"

	"github.com/consensys/septic/logger"
)

// Option defines option for altering the behavior of Sum. See the
// descriptions of functions returning instances of this type for
// implemented options.
type Option func(*Config) error

// Config is the configuration for Sum with the options applied.
type Config struct {
	Logger  zerolog.Logger // defaults to septic logger
	NbTasks int            // defaults to runtime.NumCPU()
}

// WithLogger specifies a zerolog.Logger as the destination for the
// summary line Sum logs. zerolog.Nop() will disable logging.
func WithLogger(l zerolog.Logger) Option {
	return func(opt *Config) error {
		opt.Logger = l
		return nil
	}
}

// WithNbTasks sets the number of parallel workers used to encode the
// interactions. If not set, the number of workers is set to
// runtime.NumCPU().
func WithNbTasks(nbTasks int) Option {
	return func(opt *Config) error {
		if nbTasks <= 0 {
			return fmt.Errorf("invalid number of threads: %d", nbTasks)
		}
		if nbTasks > 512 {
			// limit the number of tasks to 512. This is to avoid possible
			// saturation of the runtime scheduler.
			nbTasks = 512
		}
		opt.NbTasks = nbTasks
		return nil
	}
}

// NewConfig returns a default Config with the given options applied.
func NewConfig(opts ...Option) (Config, error) {
	opt := Config{Logger: logger.Logger()}
	opt.NbTasks = runtime.NumCPU()
	for _, option := range opts {
		if err := option(&opt); err != nil {
			return Config{}, err
		}
	}
	return opt, nil
}
