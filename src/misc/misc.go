// contains some misc helper functions etc. for anise
package misc

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// FASTA_EXTENSIONS are the file extensions accepted for FASTA input (optionally followed by .gz)
var FASTA_EXTENSIONS = []string{"fasta", "fa", "fna", "ffn", "fas", "fsa"}

// ErrorCheck is a function to throw error to the log and exit the program
func ErrorCheck(msg error) {
	if msg != nil {
		log.Fatalf("terminated\n\nERROR --> %v\n\n", msg)
	}
}

// CheckRequiredFlags is a function to check for required flags before running anise
func CheckRequiredFlags(flags *pflag.FlagSet) error {
	missing := []string{}
	flags.VisitAll(func(flag *pflag.Flag) {
		requiredAnnotation := flag.Annotations[cobra.BashCompOneRequiredFlag]
		if len(requiredAnnotation) == 0 {
			return
		}
		if requiredAnnotation[0] == "true" && !flag.Changed {
			missing = append(missing, flag.Name)
		}
	})
	if len(missing) != 0 {
		return errors.New("required flag(s) `" + strings.Join(missing, "`, `") + "` not set")
	}
	return nil
}

// StartLogging is a function to start the log...
func StartLogging(logFile string) *os.File {
	if dir := filepath.Dir(logFile); dir != "." {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			if err := os.MkdirAll(dir, 0700); err != nil {
				log.Fatal("can't create specified directory for log")
			}
		}
	}
	logFH, err := os.OpenFile(logFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		log.Fatal(err)
	}
	return logFH
}

// CheckFile is a function to check that a file can be read
func CheckFile(file string) error {
	if _, err := os.Stat(file); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file does not exist: %v", file)
		}
		return fmt.Errorf("can't access file (check permissions): %v", file)
	}
	return nil
}

// CheckExt is a function to check the extensions of a file
func CheckExt(file string, exts []string) error {
	splitFilename := strings.Split(file, ".")
	finalIdx := len(splitFilename) - 1
	if finalIdx > 0 && splitFilename[finalIdx] == "gz" {
		finalIdx--
	}
	for _, ext := range exts {
		if finalIdx > 0 && strings.ToLower(splitFilename[finalIdx]) == ext {
			return nil
		}
	}
	return fmt.Errorf("file does not have recognised extension: %v", file)
}

// CheckFASTA is a function to check that a FASTA file exists and looks like a FASTA file
func CheckFASTA(file string) error {
	if err := CheckFile(file); err != nil {
		return err
	}
	return CheckExt(file, FASTA_EXTENSIONS)
}

// CheckOutDir is a function to check that the directory for an output file exists, creating it if needed
func CheckOutDir(file string) error {
	dir := filepath.Dir(file)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("can't create output directory: %v", dir)
		}
	}
	return nil
}

// PrintMemUsage outputs the current, total and OS memory being used. As well as the number
// of garage collection cycles completed.
// lifted from: https://golangcode.com/print-the-current-memory-usage/
func PrintMemUsage() string {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return fmt.Sprintf("[ Heap Allocations: %vMb, OS Memory: %vMb, Num. GC cycles: %v ]", bToMb(m.HeapAlloc), bToMb(m.Sys), m.NumGC)
}

// bToMb converts bytes to megabytes
func bToMb(b uint64) uint64 {
	return b / 1024 / 1024
}
