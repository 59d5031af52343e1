package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	SignUp(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Location(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Analysis(ctx context.Context) error
	Report(ctx context.Context) error
	Recommend(ctx context.Context) error
	Ask(ctx context.Context) error
	Feedback(ctx context.Context) error
	ListFeedback(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the GreenPath CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on a. The loop exits on EOF, when ctx is done, or
// when the user types "exit" or "quit".
//
//	Not logged in:
//	  - help              show available commands
//	  - signup | register create an account
//	  - login             authenticate
//	  - exit | quit       leave the program
//
//	Logged in:
//	  - location | setup  pick country, state, city and living type
//	  - dashboard         heat-risk overview and recommendations
//	  - analysis | zones  zone-by-zone heat analysis
//	  - report            AI sustainability report
//	  - recommend         AI recommendations tailored to your preferences
//	  - ask               ask GreenPath AI a question
//	  - feedback          send feedback
//	  - feedbacks         list submitted feedback
//	  - whoami            show your profile
//	  - logout            log out
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors to the user.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("greenpath %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := strings.ToLower(parts[0])

		if !a.isLoggedIn() && requiresLogin(cmd) {
			printlnFn("Please log in or sign up first.")
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: location, (d)ashboard, analysis, report, recommend, ask, feedback, feedbacks, whoami, logout, exit")
			} else {
				printlnFn("Available commands: signup, login, exit")
			}

		case "signup", "register":
			_ = a.SignUp(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "location", "setup":
			_ = a.Location(ctx)

		case "d", "dashboard":
			_ = a.Dashboard(ctx)

		case "analysis", "zones":
			_ = a.Analysis(ctx)

		case "report":
			_ = a.Report(ctx)

		case "recommend":
			_ = a.Recommend(ctx)

		case "ask":
			_ = a.Ask(ctx)

		case "feedback":
			_ = a.Feedback(ctx)

		case "feedbacks":
			_ = a.ListFeedback(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func requiresLogin(cmd string) bool {
	switch cmd {
	case "logout", "whoami", "location", "setup", "d", "dashboard", "analysis", "zones",
		"report", "recommend", "ask", "feedback", "feedbacks":
		return true
	}
	return false
}
