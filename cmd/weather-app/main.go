package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-go-golems/weather-app/pkg/credentials"
	"github.com/go-go-golems/weather-app/pkg/location"
	"github.com/go-go-golems/weather-app/pkg/openweather"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tcnksm/go-input"
	"gopkg.in/natefinch/lumberjack.v2"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weather-app",
		Short: "weather-app calls openweathermap.org for weather information",
		Long: `weather-app pulls current weather data from openweathermap.org and prints
the temperature for a location.

An API key is required: pass it with --api-key or set API_KEY in the
environment or in a .env file in the working directory.

For the location, the formatting should be "City STATE COUNTRY". State and
country codes should follow ISO3166.`,
		Example: `  weather-app -l Chicago
  weather-app -l "Chicago IL"
  weather-app -l "Chicago IL US" -k <your-api-key>`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// reinitialize the logger because we can now parse --log-level and co
			// from the command line flag
			initLogger()
		},
		RunE: runWeather,
	}

	cmd.Flags().StringP("location", "l", "", `Location to search for (ie. "Chicago IL")`)
	cmd.Flags().StringP("api-key", "k", "", "API key used to interact with openweathermap. Optional if using .env or API_KEY")
	cmd.Flags().String("units", string(openweather.UnitsImperial), "Unit system for temperatures (standard, metric or imperial)")
	cmd.Flags().String("base-url", openweather.DefaultBaseURL, "Current weather endpoint to query")

	// logging flags
	cmd.PersistentFlags().Bool("with-caller", false, "Log caller")
	cmd.PersistentFlags().String("log-level", "error", "Log level (debug, info, warn, error, fatal)")
	cmd.PersistentFlags().String("log-format", "text", "Log format (json, text)")
	cmd.PersistentFlags().String("log-file", "", "Log file (default: stderr)")
	cmd.PersistentFlags().Bool("verbose", false, "Verbose output")

	return cmd
}

func runWeather(cmd *cobra.Command, _ []string) error {
	apiKeyFlag, _ := cmd.Flags().GetString("api-key")
	apiKey, err := credentials.Resolve(apiKeyFlag)
	if err != nil {
		return err
	}

	locationFlag, _ := cmd.Flags().GetString("location")
	loc := location.Parse(locationFlag)
	if loc.IsZero() && isatty.IsTerminal(os.Stdin.Fd()) {
		answer, err := askLocation(cmd.InOrStdin(), cmd.ErrOrStderr())
		if err != nil {
			return errors.Wrap(err, "failed to read location")
		}
		loc = location.Parse(answer)
	}

	unitsFlag, _ := cmd.Flags().GetString("units")
	units, err := openweather.ParseUnits(unitsFlag)
	if err != nil {
		return err
	}

	baseURL, _ := cmd.Flags().GetString("base-url")
	client := openweather.NewClient(apiKey,
		openweather.WithBaseURL(baseURL),
		openweather.WithUnits(units),
	)

	log.Debug().
		Str("location", loc.String()).
		Str("query", loc.Query()).
		Str("units", string(units)).
		Msg("retrieving current weather")

	conditions, err := client.CurrentByName(cmd.Context(), loc.Query())
	if err != nil {
		return err
	}

	log.Info().
		Str("name", conditions.Name).
		Float64("temperature", conditions.Temperature).
		Msg("successfully retrieved data")

	temperature := strconv.FormatFloat(conditions.Temperature, 'f', -1, 64)
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s weather: %s degrees %s\n",
		loc.City(), temperature, units.TemperatureScale())
	return err
}

// askLocation prompts for a location. The prompt goes to errOut so that
// stdout carries nothing but the weather line.
func askLocation(in io.Reader, errOut io.Writer) (string, error) {
	ui := &input.UI{
		Writer: errOut,
		Reader: in,
	}

	return ui.Ask("Where are you?", &input.Options{
		HideOrder: true,
	})
}

func initLogger() {
	logLevel := viper.GetString("log-level")
	verbose := viper.GetBool("verbose")
	if verbose && logLevel != "trace" {
		logLevel = "debug"
	}

	err := InitLogger(&logConfig{
		Level:      logLevel,
		LogFile:    viper.GetString("log-file"),
		LogFormat:  viper.GetString("log-format"),
		WithCaller: viper.GetBool("with-caller"),
	})
	cobra.CheckErr(err)
}

type logConfig struct {
	WithCaller bool
	Level      string
	LogFormat  string
	LogFile    string
}

func InitLogger(config *logConfig) error {
	if config.WithCaller {
		log.Logger = log.With().Caller().Logger()
	}
	// default is json
	var logWriter io.Writer
	if config.LogFormat == "text" {
		logWriter = zerolog.ConsoleWriter{Out: os.Stderr}
	} else {
		logWriter = os.Stderr
	}

	if config.LogFile != "" {
		logWriter = io.MultiWriter(
			logWriter,
			zerolog.ConsoleWriter{
				NoColor: true,
				Out: &lumberjack.Logger{
					Filename:   config.LogFile,
					MaxSize:    10, // megabytes
					MaxBackups: 3,
					MaxAge:     28,    //days
					Compress:   false, // disabled by default
				},
			})
	}

	log.Logger = log.Output(logWriter)

	switch config.Level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "fatal":
		zerolog.SetGlobalLevel(zerolog.FatalLevel)
	}

	return nil
}

func initViper(rootCmd *cobra.Command) error {
	// Load the logging configuration from the environment
	viper.SetEnvPrefix("weather")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Bind the variables to the command-line flags
	err := viper.BindPFlags(rootCmd.PersistentFlags())
	if err != nil {
		return err
	}

	// this still won't pick up on --verbose to show debug logging while the
	// command line is parsed, but at least it configures it from the environment
	initLogger()

	return nil
}

func init() {
	err := initViper(rootCmd)
	if err != nil {
		panic(err)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
