// Package file contains utilities related to file operations (e.g. reading files).
package file

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"tiktokdl/internal/domain/consts"
	"tiktokdl/internal/domain/errconsts"
	"tiktokdl/internal/domain/keys"
	"tiktokdl/internal/models"
	"tiktokdl/internal/utils/logging"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// LoadConfigFile reads an INI settings file into the given viper instance.
func LoadConfigFile(v *viper.Viper, file string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf(errconsts.ConfigFileReadFail, file, err)
	}

	v.SetConfigType("ini")
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return &models.ConfigError{Key: "file", Value: file, Err: err}
	}
	return nil
}

// LoadConfigRecord loads the [defaults] section of the settings file at path.
//
// A missing file or a missing section yields an empty record and no error.
// Values that fail to parse as their expected type return a *models.ConfigError.
func LoadConfigRecord(path string) (models.ConfigRecord, error) {
	var rec models.ConfigRecord
	if path == "" {
		return rec, nil
	}

	info, err := os.Stat(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		logging.D(1, "No config file at %q, using defaults", path)
		return rec, nil
	case err != nil:
		return rec, fmt.Errorf(errconsts.ConfigFileReadFail, path, err)
	case info.IsDir():
		return rec, &models.ConfigError{Key: "file", Value: path, Err: errors.New("config path is a directory, should be a file")}
	}

	v := viper.New()
	if err := LoadConfigFile(v, path); err != nil {
		return rec, err
	}

	section := v.Sub(consts.ConfigSection)
	if section == nil {
		logging.D(1, "Config file %q has no [%s] section", path, consts.ConfigSection)
		return rec, nil
	}

	s := sectionReader{v: section}
	rec.OutputPath = s.str(keys.CfgOutputPath)
	rec.TranscriptLanguage = s.str(keys.CfgTranscriptLanguage)
	rec.CookiesFromBrowser = s.str(keys.CfgCookiesFromBrowser)
	rec.CookiesFile = s.str(keys.CfgCookiesFile)
	rec.DownloadArchive = s.str(keys.CfgDownloadArchive)
	rec.DateAfter = s.str(keys.CfgDateAfter)
	rec.HistoryDB = s.str(keys.CfgHistoryDB)
	rec.MinLikes = s.int64(keys.CfgMinLikes)
	rec.MinViews = s.int64(keys.CfgMinViews)
	rec.Transcripts = s.bool(keys.CfgTranscripts)
	rec.ConcurrentDownloads = s.int(keys.CfgConcurrentDownloads)
	rec.MinSleepInterval = s.int(keys.CfgMinSleepInterval)
	rec.MaxSleepInterval = s.int(keys.CfgMaxSleepInterval)

	if s.err != nil {
		return models.ConfigRecord{}, s.err
	}
	return rec, nil
}

// sectionReader reads typed, optional values from a config section.
//
// The first parse failure is kept in err and later reads are skipped.
type sectionReader struct {
	v   *viper.Viper
	err error
}

func (s *sectionReader) raw(key string) (string, bool) {
	if s.err != nil || !s.v.IsSet(key) {
		return "", false
	}
	return strings.TrimSpace(s.v.GetString(key)), true
}

func (s *sectionReader) str(key string) *string {
	val, ok := s.raw(key)
	if !ok {
		return nil
	}
	return &val
}

func (s *sectionReader) int64(key string) *int64 {
	val, ok := s.raw(key)
	if !ok {
		return nil
	}
	n, err := cast.ToInt64E(trimLeadingZeros(val))
	if err != nil || val == "" {
		s.fail(key, val, err)
		return nil
	}
	return &n
}

func (s *sectionReader) int(key string) *int {
	n := s.int64(key)
	if n == nil {
		return nil
	}
	i := int(*n)
	return &i
}

func (s *sectionReader) bool(key string) *bool {
	val, ok := s.raw(key)
	if !ok {
		return nil
	}
	switch strings.ToLower(val) {
	case "yes", "on":
		val = "true"
	case "no", "off":
		val = "false"
	}
	b, err := cast.ToBoolE(strings.ToLower(val))
	if err != nil || val == "" {
		s.fail(key, val, err)
		return nil
	}
	return &b
}

func (s *sectionReader) fail(key, val string, err error) {
	if err == nil {
		err = errors.New("empty value")
	}
	s.err = &models.ConfigError{Key: key, Value: val, Err: err}
}

// trimLeadingZeros stops "010" from being read as an octal literal.
func trimLeadingZeros(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		sign, s = s[:1], s[1:]
	}
	t := strings.TrimLeft(s, "0")
	if t == "" && s != "" {
		t = "0"
	}
	return sign + t
}

// ReadFileLines loads the non-blank lines of a file, trimmed, in file order.
func ReadFileLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := f.Close(); err != nil {
			logging.E("failed to close file %v due to error: %v", path, err)
		}
	}()

	lines := []string{}
	scanner := bufio.NewScanner(f)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
