package config

import (
	"os"
	"strconv"
)

type Config struct {
	// Course data file
	CourseFile      string
	CourseDelimiter string

	// HTTP fetch
	FetchTimeoutSeconds int

	// SFTP (fetch input file / upload exports)
	SFTPHost                  string
	SFTPPort                  int
	SFTPUser                  string
	SFTPPass                  string
	SFTPDir                   string
	SFTPInsecureIgnoreHostKey bool
}

func Load() Config {
	return Config{
		// Course data file
		CourseFile:      getenv("COURSE_FILE", "courses.csv"),
		CourseDelimiter: getenv("COURSE_DELIMITER", ","),

		// HTTP fetch
		FetchTimeoutSeconds: getenvInt("COURSE_FETCH_TIMEOUT_SECONDS", 60),

		// SFTP
		SFTPHost:                  os.Getenv("SFTP_HOST"),
		SFTPPort:                  getenvInt("SFTP_PORT", 22),
		SFTPUser:                  os.Getenv("SFTP_USER"),
		SFTPPass:                  os.Getenv("SFTP_PASS"),
		SFTPDir:                   getenv("SFTP_DIR", "/inbound"),
		SFTPInsecureIgnoreHostKey: getenvBool("SFTP_INSECURE_IGNORE_HOSTKEY", true),
	}
}

// Delimiter returns the configured field separator as a rune, ',' when the
// env value is not exactly one character.
func (c Config) Delimiter() rune {
	if len(c.CourseDelimiter) != 1 {
		return ','
	}
	return rune(c.CourseDelimiter[0])
}

func getenv(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func getenvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getenvBool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
