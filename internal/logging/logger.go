package logging

import (
	"io"
	"os"
	"strings"

	"github.com/2beens/fittrack/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const defaultLogMaxSizeMB = 50

type LoggerSetupParams struct {
	LogFileName      string
	LogMaxSizeMB     int
	LogToStdout      bool
	LogLevel         string
	LogFormatJSON    bool
	Environment      string
	SentryEnabled    bool
	SentryDSN        string
	SentryServerName string
}

// Setup configures the global logrus logger. The returned closer releases the
// log file, if one is used.
func Setup(params LoggerSetupParams) io.Closer {
	if params.LogFormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	if params.SentryEnabled {
		setupSentry(params)
	}

	logrus.SetLevel(GetLevel(params.LogLevel))

	if params.LogFileName == "" {
		logrus.SetOutput(os.Stdout)
		logrus.Println("writing logs only to STDOUT")
		return nopCloser{}
	}

	fileWriter := newFileWriter(params.LogFileName, params.LogMaxSizeMB)
	if !params.LogToStdout {
		logrus.SetOutput(fileWriter)
		return fileWriter
	}

	logrus.Println("writing logs to file and STDOUT")
	output := pkg.NewCombinedWriter(os.Stdout, fileWriter)
	logrus.SetOutput(output)
	return fileWriter
}

func setupSentry(params LoggerSetupParams) {
	err := sentry.Init(sentry.ClientOptions{
		Environment:      params.Environment,
		Dsn:              params.SentryDSN,
		TracesSampleRate: 1.0,
		ServerName:       params.SentryServerName,
	})
	if err != nil {
		logrus.Errorf("sentry.Init: %s", err)
		return
	}

	logrus.AddHook(NewSentryHook([]logrus.Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
	}))

	logrus.Infoln("Sentry set up successfully")
}

func newFileWriter(fileName string, maxSizeMB int) *lumberjack.Logger {
	if !strings.HasSuffix(fileName, ".log") {
		fileName += ".log"
	}
	if maxSizeMB <= 0 {
		maxSizeMB = defaultLogMaxSizeMB
	}

	// rotated files are kept, no MaxBackups / MaxAge
	return &lumberjack.Logger{
		Filename:  fileName,
		MaxSize:   maxSizeMB,
		LocalTime: false, // UTC
		Compress:  true,
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func GetLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	case "info":
		return logrus.InfoLevel
	case "trace":
		return logrus.TraceLevel
	case "warn":
		return logrus.WarnLevel
	default:
		return logrus.TraceLevel
	}
}
