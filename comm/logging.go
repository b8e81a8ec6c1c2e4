package comm

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

var settings = &struct {
	noProgress bool
	quiet      bool
	verbose    bool
	json       bool
	panic      bool
}{}

// Configure sets all logging options in one go
func Configure(noProgress, quiet, verbose, json, panic bool) {
	settings.noProgress = noProgress
	settings.quiet = quiet
	settings.verbose = verbose
	settings.json = json
	settings.panic = panic
}

// JsonEnabled returns true if output is JSON lines on stdout.
func JsonEnabled() bool {
	return settings.json
}

// VerboseEnabled returns true if debug messages are printed.
func VerboseEnabled() bool {
	return settings.verbose && !settings.quiet
}

type JsonMessage map[string]interface{}

var stdinLock sync.Mutex
var stdinScanner *bufio.Scanner

func readLine() string {
	stdinLock.Lock()
	defer stdinLock.Unlock()

	if stdinScanner == nil {
		stdinScanner = bufio.NewScanner(os.Stdin)
	}
	stdinScanner.Scan()
	return strings.TrimSpace(stdinScanner.Text())
}

type promptResponse struct {
	Response string `json:"response"`
}

// Prompt asks the user for a line of input. In JSON mode, a "prompt" message
// is sent and a {"response": "..."} line is expected on stdin.
func Prompt(question string, secret bool) string {
	if settings.json {
		send("prompt", JsonMessage{"question": question, "secret": secret})

		input := readLine()
		var res promptResponse
		if err := json.Unmarshal([]byte(input), &res); err != nil {
			Warnf("Couldn't unmarshal response %q", input)
			return ""
		}
		return res.Response
	}

	fmt.Fprintf(os.Stderr, ":: %s ", question)
	return readLine()
}

// YesNo asks the user whether to proceed or not
func YesNo(question string) bool {
	answer := strings.ToLower(Prompt(question+" [y/N]", false))
	return answer == "y" || answer == "yes" || answer == "true"
}

// Opf prints a formatted string informing the user on what operation we're doing
func Opf(format string, args ...interface{}) {
	Logf("%s %s", theme.OpSign, fmt.Sprintf(format, args...))
}

// Statf prints a formatted string informing the user how fast the operation went
func Statf(format string, args ...interface{}) {
	Logf("%s %s", theme.StatSign, fmt.Sprintf(format, args...))
}

// Log sends an informational message to the client
func Log(msg string) {
	Logl("info", msg)
}

// Logf sends a formatted informational message to the client
func Logf(format string, args ...interface{}) {
	Loglf("info", format, args...)
}

// Notice prints a box with important info in it.
func Notice(header string, lines []string) {
	if settings.json {
		Logf("notice: %s", header)
		for _, line := range lines {
			Logf("notice: %s", line)
		}
		return
	}

	width := len(header)
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}
	rule := "+" + strings.Repeat("-", width+2) + "+"
	log.Println(rule)
	log.Printf("| %-*s |", width, header)
	log.Println(rule)
	for _, line := range lines {
		log.Printf("| %-*s |", width, line)
	}
	log.Println(rule)
}

// Warn lets the user know about a problem that's non-critical
func Warn(msg string) {
	Logl("warning", msg)
}

// Warnf is a formatted variant of Warn
func Warnf(format string, args ...interface{}) {
	Loglf("warning", format, args...)
}

// Debug messages are like Info messages, but printed only when verbose
func Debug(msg string) {
	Logl("debug", msg)
}

// Debugf is a formatted variant of Debug
func Debugf(format string, args ...interface{}) {
	Loglf("debug", format, args...)
}

// Logl logs a message of a given level
func Logl(level string, msg string) {
	send("log", JsonMessage{
		"message": msg,
		"level":   level,
	})
}

// Loglf logs a formatted message of a given level
func Loglf(level string, format string, args ...interface{}) {
	Logl(level, fmt.Sprintf(format, args...))
}

// Die exits with a non-zero exit code after giving a reason to the client
func Die(msg string) {
	send("error", JsonMessage{
		"message": msg,
	})
}

// Dief is a formatted variant of Die
func Dief(format string, args ...interface{}) {
	Die(fmt.Sprintf(format, args...))
}

// Result sends a result
func Result(value interface{}) {
	send("result", JsonMessage{
		"value": value,
	})
}

type printerFunc func()

// ResultOrPrint sends value in JSON mode, and calls p otherwise
func ResultOrPrint(value interface{}, p printerFunc) {
	if settings.json {
		Result(value)
	} else {
		p()
	}
}

// colors are dropped when stdout is not a terminal
func colorLevel(level interface{}) string {
	s := fmt.Sprintf("%v", level)
	switch s {
	case "error":
		return color.RedString(s)
	case "warning":
		return color.YellowString(s)
	default:
		return s
	}
}

// sends a message to the client
func send(msgType string, obj JsonMessage) {
	if settings.json {
		obj["type"] = msgType
		obj["time"] = time.Now().UTC().Unix()
		if msgType == "log" && obj["level"] == "debug" && !VerboseEnabled() {
			return
		}

		sendJSON(obj)
		if msgType == "error" {
			os.Exit(1)
		}
		return
	}

	switch msgType {
	case "log":
		switch obj["level"] {
		case "info":
			if !settings.quiet {
				log.Println(obj["message"])
			}
		case "debug":
			if VerboseEnabled() {
				log.Println(obj["message"])
			}
		default:
			log.Printf("%s: %s\n", colorLevel(obj["level"]), obj["message"])
		}
	case "error":
		EndProgress()
		if settings.panic {
			log.Panicln(obj["message"])
		} else {
			log.Println(obj["message"])
			os.Exit(1)
		}
	case "result", "progress", "prompt":
		// only meaningful in json mode
	default:
		log.Println(msgType, obj)
	}
}

var stdoutLock sync.Mutex

// sends a JSON-encoded message to the client
func sendJSON(obj JsonMessage) {
	bs, err := json.Marshal(obj)
	if err != nil {
		bs, _ = json.Marshal(JsonMessage{
			"type":    "log",
			"level":   "error",
			"message": fmt.Sprintf("could not encode %s message: %v", obj["type"], err),
		})
	}

	stdoutLock.Lock()
	defer stdoutLock.Unlock()
	fmt.Fprintln(os.Stdout, string(bs))
}
