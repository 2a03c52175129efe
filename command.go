package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MixinNetwork/rational/calc"
	"github.com/MixinNetwork/rational/common"
	"github.com/MixinNetwork/rational/config"
	"github.com/MixinNetwork/rational/logger"
	"github.com/MixinNetwork/rational/rpc"
	"github.com/MixinNetwork/rational/storage"
	"github.com/urfave/cli/v2"
)

func reduceCmd(c *cli.Context) error {
	args, err := literalArgs(c, 1)
	if err != nil {
		return err
	}
	fmt.Println(args[0])
	return nil
}

func arithmeticCmd(c *cli.Context) error {
	args, err := literalArgs(c, 2)
	if err != nil {
		return err
	}
	x, y := args[0], args[1]
	switch c.Command.Name {
	case "add":
		fmt.Println(x.Add(y))
	case "sub":
		fmt.Println(x.Sub(y))
	case "mul":
		fmt.Println(x.Mul(y))
	case "div":
		q, err := x.Div(y)
		if err != nil {
			return err
		}
		fmt.Println(q)
	}
	return nil
}

func compareCmd(c *cli.Context) error {
	args, err := literalArgs(c, 2)
	if err != nil {
		return err
	}
	fmt.Println(args[0].Cmp(args[1]))
	return nil
}

func inRangeCmd(c *cli.Context) error {
	args, err := literalArgs(c, 3)
	if err != nil {
		return err
	}
	fmt.Println(args[0].InRange(args[1], args[2]))
	return nil
}

func decimalCmd(c *cli.Context) error {
	custom, err := loadConfig(c.String("config"))
	if err != nil {
		return err
	}
	args, err := literalArgs(c, 1)
	if err != nil {
		return err
	}
	places := c.Int("places")
	if places < 0 {
		places = custom.Calculator.Precision
	}
	if places > config.PrecisionMaximum {
		return fmt.Errorf("decimal places %d exceed %d", places, config.PrecisionMaximum)
	}
	fmt.Println(args[0].FloatString(int32(places)))
	return nil
}

func evalCmd(c *cli.Context) error {
	program := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(program) == "" {
		return fmt.Errorf("empty program")
	}

	var regs calc.Registers
	if dir := c.String("dir"); dir != "" {
		custom, err := loadConfig(c.String("config"))
		if err != nil {
			return err
		}
		store, err := storage.NewBadgerStore(custom, dir)
		if err != nil {
			return err
		}
		defer store.Close()
		regs = store
	}

	m := calc.NewMachine(regs)
	err := m.Eval(program)
	for _, r := range m.Stack() {
		fmt.Println(r)
	}
	return err
}

func daemonCmd(c *cli.Context) error {
	dir := c.String("dir")
	if dir == "" {
		return fmt.Errorf("the data directory is required")
	}

	file := c.String("config")
	if file == "" {
		file = filepath.Join(dir, "config.toml")
		if _, err := os.Stat(file); os.IsNotExist(err) {
			file = ""
		}
	}
	custom, err := loadConfig(file)
	if err != nil {
		return err
	}

	level := custom.Log.Level
	if c.IsSet("log") {
		level = c.Int("log")
	}
	filter := custom.Log.Filter
	if c.IsSet("filter") {
		filter = c.String("filter")
	}
	err = logger.Configure(level, filter, custom.Log.Limiter)
	if err != nil {
		return err
	}

	store, err := storage.NewBadgerStore(custom, dir)
	if err != nil {
		return err
	}
	defer store.Close()

	port := custom.RPC.Port
	if p := c.Int("port"); p > 0 {
		port = p
	}
	return rpc.StartHTTP(custom, store, port)
}

func callCmd(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("method required")
	}
	params := make([]interface{}, 0)
	for _, p := range c.Args().Slice()[1:] {
		params = append(params, p)
	}
	data, err := rpc.CallRPC(c.String("node"), c.Args().First(), params)
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func literalArgs(c *cli.Context, count int) ([]common.Rational, error) {
	if c.NArg() != count {
		return nil, fmt.Errorf("%s expects %d arguments, got %d", c.Command.Name, count, c.NArg())
	}
	args := make([]common.Rational, count)
	for i := range args {
		r, err := calc.ParseLiteral(c.Args().Get(i))
		if err != nil {
			return nil, err
		}
		args[i] = r
	}
	return args, nil
}

func loadConfig(file string) (*config.Custom, error) {
	if file == "" {
		return config.Default(), nil
	}
	return config.Initialize(file)
}
