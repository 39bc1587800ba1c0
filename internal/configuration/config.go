package configuration

import (
	"reflect"
	"strconv"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const (
	GpioBackendChardev = "gpiochip"
	GpioBackendSysfs   = "sysfs"

	TempSourceCmd  = "cmd"
	TempSourceFile = "file"

	DefaultThermalZonePath = "/sys/class/thermal/thermal_zone0/temp"
)

type Configuration struct {
	// BCM numbering of the pin the fan is connected to.
	GpioPin int `mapstructure:"gpio_pin"`
	// Which GPIO interface to use to drive the pin.
	GpioBackend string `mapstructure:"gpio_backend"`
	// Path of a specific gpiochip character device. Empty means scan /dev.
	GpioChip string `mapstructure:"gpio_chip"`

	// Time between two temperature checks.
	Interval time.Duration `mapstructure:"interval"`

	// Temperature at or above which the fan is turned on.
	OnThreshold float64 `mapstructure:"on_threshold"`
	// Temperature below which the fan is turned off.
	OffThreshold float64 `mapstructure:"off_threshold"`

	TempSource string `mapstructure:"temp_source"`
	TempFile   string `mapstructure:"temp_file"`

	// Number of consecutive read/write failures after which the daemon
	// gives up. Zero disables the ceiling.
	MaxFailures int `mapstructure:"max_failures"`
}

var CurrentConfig Configuration

// InitConfig binds the environment variables and registers default values.
// All configuration comes from the environment, there is no config file.
func InitConfig() {
	_ = viper.BindEnv("gpio_pin", "GPIO_PIN")
	_ = viper.BindEnv("gpio_backend", "GPIO_BACKEND")
	_ = viper.BindEnv("gpio_chip", "GPIO_CHIP")
	_ = viper.BindEnv("interval", "INTERVAL")
	_ = viper.BindEnv("on_threshold", "ON_THRESHOLD")
	_ = viper.BindEnv("off_threshold", "OFF_THRESHOLD")
	_ = viper.BindEnv("temp_source", "TEMP_SOURCE")
	_ = viper.BindEnv("temp_file", "TEMP_FILE")
	_ = viper.BindEnv("max_failures", "MAX_FAILURES")

	setDefaultValues()
}

func setDefaultValues() {
	viper.SetDefault("gpio_pin", 17)
	viper.SetDefault("gpio_backend", GpioBackendChardev)
	viper.SetDefault("gpio_chip", "")
	viper.SetDefault("interval", 15*time.Second)
	viper.SetDefault("on_threshold", 60.0)
	viper.SetDefault("off_threshold", 50.0)
	viper.SetDefault("temp_source", TempSourceCmd)
	viper.SetDefault("temp_file", DefaultThermalZonePath)
	viper.SetDefault("max_failures", 10)
}

// LoadConfig decodes the bound values into CurrentConfig.
// A malformed environment variable value results in an error here,
// the caller is expected to fail fast.
func LoadConfig() error {
	return viper.Unmarshal(&CurrentConfig, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			intervalSecondsHookFunc(),
		),
	))
}

// intervalSecondsHookFunc decodes durations from the environment.
// A bare integer is interpreted as seconds (INTERVAL=15), anything else
// must parse as a Go duration string (INTERVAL=1m30s).
func intervalSecondsHookFunc() mapstructure.DecodeHookFuncType {
	durationType := reflect.TypeOf(time.Duration(0))
	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{},
	) (interface{}, error) {
		if t != durationType || f == durationType {
			return data, nil
		}

		switch value := data.(type) {
		case string:
			if seconds, err := strconv.Atoi(value); err == nil {
				return time.Duration(seconds) * time.Second, nil
			}
			return time.ParseDuration(value)
		case int:
			return time.Duration(value) * time.Second, nil
		case int64:
			return time.Duration(value) * time.Second, nil
		default:
			return data, nil
		}
	}
}
