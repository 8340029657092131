// Command talenta runs an interactive recruitment assistant chat on stdin
// and stdout. Configuration comes from talenta.yaml, TALENTA_ environment
// variables and flags; the language model provider needs its API key in the
// environment (OPENAI_API_KEY or ANTHROPIC_API_KEY).
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/talentahq/talenta/artifact"
	"github.com/talentahq/talenta/catalog"
	"github.com/talentahq/talenta/config"
	"github.com/talentahq/talenta/core"
	"github.com/talentahq/talenta/dependency"
	"github.com/talentahq/talenta/dispatch"
	"github.com/talentahq/talenta/gateway"
	anthropicgw "github.com/talentahq/talenta/gateway/anthropic"
	openaigw "github.com/talentahq/talenta/gateway/openai"
	"github.com/talentahq/talenta/logging"
	"github.com/talentahq/talenta/modules"
	"github.com/talentahq/talenta/orchestrator"
	"github.com/talentahq/talenta/persistence"
	"github.com/talentahq/talenta/session"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	sessionID := flag.String("session", "", "session id to resume or create (default: a new id)")
	flag.Parse()

	if err := run(*configPath, *sessionID); err != nil {
		fmt.Fprintln(os.Stderr, "talenta:", err)
		os.Exit(1)
	}
}

func run(configPath, sessionID string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := logging.New(os.Stderr, logging.ParseLevel(cfg.Log.Level), cfg.Log.Format)

	artifacts, sessions, cleanup, err := buildStores(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	cat := catalog.New()
	graph := dependency.NewGraph()
	dispatcher := dispatch.New(cat, graph, artifacts, func(o *dispatch.Options) {
		o.Logger = logger
	})
	if err := modules.Wire(cat, graph, dispatcher); err != nil {
		return err
	}

	gw, err := buildGateway(cfg)
	if err != nil {
		return err
	}

	orch := orchestrator.New(gw, cat, dispatcher, sessions, func(o *orchestrator.Options) {
		o.MaxIterations = cfg.Conversation.MaxIterations
		o.MaxTurns = cfg.Conversation.MaxTurns
		o.Logger = logger
	})

	if sessionID == "" {
		sessionID = core.NewID()
	}
	if _, err := sessions.Get(sessionID); err != nil {
		if !errors.Is(err, core.ErrSessionNotFound) {
			return err
		}
		if _, err := sessions.Create(sessionID); err != nil {
			return err
		}
	}

	fmt.Printf("Talenta recruitment assistant (session %s). Type 'exit' to quit.\n\n", sessionID)
	return chatLoop(orch, sessionID)
}

// chatLoop reads user lines and prints assistant replies until EOF or exit.
func chatLoop(orch *orchestrator.Orchestrator, sessionID string) error {
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return nil
		}

		reply, err := orch.Chat(context.Background(), sessionID, line)
		if err != nil && reply == "" {
			return err
		}
		fmt.Println(reply)
		fmt.Println()
	}
}

// buildStores creates the artifact and session stores for the configured
// backend. The returned cleanup closes the database when one was opened.
func buildStores(cfg *config.Config) (core.ArtifactStore, core.SessionStore, func(), error) {
	if cfg.Storage.Backend == "memory" {
		return artifact.NewInMemoryStore(), session.NewInMemoryStore(), func() {}, nil
	}

	codec, err := modules.Codec()
	if err != nil {
		return nil, nil, nil, err
	}
	db, err := persistence.Open(cfg.Storage.Path)
	if err != nil {
		return nil, nil, nil, err
	}
	cleanup := func() { db.Close() }
	return persistence.NewArtifactStore(db, codec), persistence.NewSessionStore(db), cleanup, nil
}

// buildGateway creates the configured language model gateway.
func buildGateway(cfg *config.Config) (gateway.Gateway, error) {
	switch cfg.Provider.Name {
	case "openai":
		return openaigw.New(func(o *openaigw.Options) {
			if cfg.Provider.Model != "" {
				o.Model = cfg.Provider.Model
			}
			o.Temperature = cfg.Provider.Temperature
			o.MaxCompletionTokens = cfg.Provider.MaxTokens
			o.RequestTimeout = cfg.Provider.Timeout
		}), nil
	case "anthropic":
		return anthropicgw.New(func(o *anthropicgw.Options) {
			if cfg.Provider.Model != "" {
				o.Model = anthropic.Model(cfg.Provider.Model)
			}
			o.Temperature = cfg.Provider.Temperature
			o.MaxTokens = cfg.Provider.MaxTokens
			o.RequestTimeout = cfg.Provider.Timeout
		}), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider.Name)
	}
}
