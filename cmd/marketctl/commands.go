package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/marketplace-core/internal/adapters/clients/notify"
	"github.com/jsamuelsen11/marketplace-core/internal/adapters/http/dto"
	"github.com/jsamuelsen11/marketplace-core/internal/domain"
)

func getCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "get <kind> <id>",
		Short: "Show one entity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := parseRef(args[0], args[1])
			if err != nil {
				return err
			}
			return opts.withEnv(cmd.Context(), func(ctx context.Context, e *env) error {
				entity, err := e.lifecycle.Get(ctx, ref.Kind, ref.ID)
				if err != nil {
					return err
				}
				if opts.jsonOut {
					return printJSON(opts.out, dto.ToEntityResponse(entity))
				}
				renderEntities(opts.out, []domain.Entity{entity})
				return nil
			})
		},
	}
}

func listCmd(opts *options) *cobra.Command {
	var filter domain.Filter
	var index string
	cmd := &cobra.Command{
		Use:   "list <kind>",
		Short: "List entities of a kind",
		Long: `List entities of a kind, optionally through one secondary index:
  marketctl list proposal --index parent --key 12
  marketctl list bounty --index status --key open`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}
			filter.Index = domain.Index(index)
			if err := filter.Validate(); err != nil {
				return err
			}
			return opts.withEnv(cmd.Context(), func(ctx context.Context, e *env) error {
				items, err := e.lifecycle.List(ctx, kind, filter)
				if err != nil {
					return err
				}
				if opts.jsonOut {
					return printJSON(opts.out, dto.ToListResponse(items, dto.ToEntityResponse))
				}
				renderEntities(opts.out, items)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&index, "index", "", "secondary index (owner, category, status, parent, freelancer, project)")
	cmd.Flags().StringVar(&filter.Key, "key", "", "index key to match")
	return cmd
}

func eventsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "events <kind> <id>",
		Short: "Show the event journal of one entity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := parseRef(args[0], args[1])
			if err != nil {
				return err
			}
			return opts.withEnv(cmd.Context(), func(ctx context.Context, e *env) error {
				history, err := e.journal.History(ctx, ref)
				if err != nil {
					return err
				}
				if opts.jsonOut {
					return printJSON(opts.out, dto.ToListResponse(history, notify.ToEventDTO))
				}
				renderEvents(opts.out, history)
				return nil
			})
		},
	}
}

func sweepCmd(opts *options) *cobra.Command {
	var at string
	cmd := &cobra.Command{
		Use:   "sweep <kind>",
		Short: "Expire every entity of a kind whose deadline has passed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}
			now := time.Now().UTC()
			if at != "" {
				now, err = time.Parse(time.RFC3339, at)
				if err != nil {
					return fmt.Errorf("--at must be RFC3339: %w", err)
				}
			}
			return opts.withEnv(cmd.Context(), func(ctx context.Context, e *env) error {
				moved, err := e.sweeper.Sweep(ctx, kind, now)
				if err != nil {
					return fmt.Errorf("sweeping %s after %d transitions: %w", kind, moved, err)
				}
				if opts.jsonOut {
					return printJSON(opts.out, dto.SweepResponse{
						Kind:         string(kind),
						Transitioned: moved,
						At:           now.UTC().Format(time.RFC3339),
					})
				}
				fmt.Fprintf(opts.out, "swept %s: %d transitioned\n", kind, moved)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "sweep as of this RFC3339 time (default now)")
	return cmd
}

func transitionCmd(opts *options) *cobra.Command {
	var as string
	cmd := &cobra.Command{
		Use:   "transition <kind> <id> <status>",
		Short: "Move one entity to a new status on behalf of a principal",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := parseRef(args[0], args[1])
			if err != nil {
				return err
			}
			caller := domain.Principal(strings.TrimSpace(as))
			if caller == "" {
				return fmt.Errorf("--as is required: %w", domain.ErrUnauthorized)
			}
			return opts.withEnv(cmd.Context(), func(ctx context.Context, e *env) error {
				entity, err := e.lifecycle.Transition(ctx, caller, ref.Kind, ref.ID, domain.Status(args[2]))
				if err != nil {
					return err
				}
				if opts.jsonOut {
					return printJSON(opts.out, dto.ToEntityResponse(entity))
				}
				renderEntities(opts.out, []domain.Entity{entity})
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&as, "as", "", "principal performing the transition")
	return cmd
}

func parseKind(raw string) (domain.Kind, error) {
	kind := domain.Kind(raw)
	if !kind.IsValid() {
		return "", &domain.ValidationError{Fields: map[string]string{"kind": "unknown kind " + raw}}
	}
	return kind, nil
}

func parseRef(rawKind, rawID string) (domain.Ref, error) {
	kind, err := parseKind(rawKind)
	if err != nil {
		return domain.Ref{}, err
	}
	id, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil || id == 0 {
		return domain.Ref{}, &domain.ValidationError{Fields: map[string]string{"id": "must be a positive integer"}}
	}
	return domain.Ref{Kind: kind, ID: id}, nil
}
