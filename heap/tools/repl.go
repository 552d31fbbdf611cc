package main

import (
	"bufio"
	"cmp"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/navijation/njheap/heap"
	"github.com/navijation/njheap/util"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

const defaultCapacity = 64

type replArgs struct {
	Capacity util.Optional[int]
}

func runREPL(ctx context.Context, cmd *cli.Command) error {
	var args replArgs
	if cmd.IsSet("capacity") {
		args.Capacity = util.Some(int(cmd.Uint("capacity")))
	}
	return repl(os.Stdin, os.Stdout, args)
}

// repl reads one command per line and applies it to a single integer heap.
// Heap-level failures are reported and the loop continues; only I/O errors
// terminate it.
func repl(in io.Reader, out io.Writer, args replArgs) error {
	h := heap.NewHeap(args.Capacity.Or(defaultCapacity), cmp.Compare[int])

	fmt.Fprintf(out, "heap capacity %d; commands: insert N | top | extract | remove I | change I N | find N | print | size | quit\n",
		h.Capacity())

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		if fields[0] == "quit" {
			return nil
		}

		if err := apply(&h, out, fields); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
		}
	}
	return scanner.Err()
}

func apply(h *heap.Heap[int], out io.Writer, fields []string) error {
	switch cmd, operands := fields[0], fields[1:]; cmd {
	case "insert":
		value, err := operand(operands, 0)
		if err != nil {
			return err
		}
		if err := h.Insert(value); err != nil {
			return errors.Wrapf(err, "insert %d", value)
		}

	case "top":
		top, err := h.Top()
		if err != nil {
			return errors.Wrap(err, "top")
		}
		fmt.Fprintf(out, "%d\n", top)

	case "extract":
		top, err := h.ExtractTop()
		if err != nil {
			return errors.Wrap(err, "extract")
		}
		fmt.Fprintf(out, "%d\n", top)

	case "remove":
		index, err := operand(operands, 0)
		if err != nil {
			return err
		}
		removed, err := h.Remove(index)
		if err != nil {
			return errors.Wrapf(err, "remove %d", index)
		}
		fmt.Fprintf(out, "%d\n", removed)

	case "change":
		index, err := operand(operands, 0)
		if err != nil {
			return err
		}
		value, err := operand(operands, 1)
		if err != nil {
			return err
		}
		if err := h.ChangePriority(index, value); err != nil {
			return errors.Wrapf(err, "change %d %d", index, value)
		}

	case "find":
		value, err := operand(operands, 0)
		if err != nil {
			return err
		}
		if index, exists := h.Find(value); exists {
			fmt.Fprintf(out, "%d\n", index)
		} else {
			fmt.Fprintf(out, "not found\n")
		}

	case "print":
		fmt.Fprintf(out, "%s\n", h.String())

	case "size":
		fmt.Fprintf(out, "%d of %d\n", h.Size(), h.Capacity())

	default:
		return errors.Errorf("unknown command %q", cmd)
	}
	return nil
}

func operand(operands []string, i int) (int, error) {
	if i >= len(operands) {
		return 0, errors.Errorf("missing operand %d", i+1)
	}
	value, err := strconv.Atoi(operands[i])
	if err != nil {
		return 0, errors.Wrapf(err, "operand %q must be an integer", operands[i])
	}
	return value, nil
}
