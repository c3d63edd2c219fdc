package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sirupsen/logrus"
)

const iconDir = "icons"

var iconSizes = [...]int{16, 48, 128}

func main() {
	logrus.SetFormatter(&logFormatter{})
	logrus.SetOutput(os.Stderr)
	logrus.SetReportCaller(true)

	if err := createIcons(os.Stdout, iconDir); err != nil {
		logrus.Fatal(err)
	}
	fmt.Println("All icons created successfully!")
}

// createIcons writes one icon per entry of iconSizes into dir, creating dir
// if needed. It stops at the first icon that fails.
func createIcons(w io.Writer, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for _, size := range iconSizes {
		name := filepath.Join(dir, "icon"+strconv.Itoa(size)+".png")
		if err := createIcon(w, size, name); err != nil {
			return err
		}
	}
	return nil
}

type logFormatter struct{}

func (f *logFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	buf := bytes.Buffer{}
	if entry.Level <= logrus.ErrorLevel {
		buf.WriteString("ERR")
	} else {
		buf.WriteString("INFO")
	}
	buf.WriteString("\t")
	buf.WriteString(entry.Time.UTC().Format("2006-01-02T15:04:05.000\t"))
	if entry.Caller == nil {
		buf.WriteString("internal")
	} else {
		buf.WriteString(filepath.Base(entry.Caller.File))
		buf.WriteString(":")
		buf.WriteString(strconv.Itoa(entry.Caller.Line))
	}
	buf.WriteString("\t")
	buf.WriteString(entry.Message)
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
