// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"fmt"
	"regexp"

	"github.com/Fantom-foundation/Mockchain/go/processor"
	"github.com/Fantom-foundation/Mockchain/go/scenario"
	"github.com/urfave/cli/v2"
)

var RunCmd = cli.Command{
	Action:    doRun,
	Name:      "run",
	Usage:     "Run scenario files against the ledger",
	ArgsUsage: "<file|dir>...",
	Flags: []cli.Flag{
		filterFlag,
		createMissingFlag,
		contractCacheSizeFlag,
	},
}

func doRun(context *cli.Context) error {
	if context.Args().Len() == 0 {
		return fmt.Errorf("no scenario files given")
	}
	v, err := getViper(context)
	if err != nil {
		return err
	}
	filter, err := regexp.Compile(v.GetString(filterKey))
	if err != nil {
		return err
	}

	scenarios, err := scenario.LoadAll(context.Args().Slice()...)
	if err != nil {
		return err
	}

	out := context.App.Writer
	passed, failed := 0, 0
	for _, s := range scenarios {
		if !filter.MatchString(s.Name) {
			continue
		}
		p, err := processor.New(processorConfig(v))
		if err != nil {
			return err
		}
		if err := s.Run(p); err != nil {
			failed++
			fmt.Fprintf(out, "FAIL %s\n\t%v\n", s.Name, err)
			continue
		}
		passed++
		fmt.Fprintf(out, "PASS %s\n", s.Name)
	}

	fmt.Fprintf(out, "%d scenarios passed, %d failed\n", passed, failed)
	if failed > 0 {
		return fmt.Errorf("failed to pass %d scenarios", failed)
	}
	return nil
}
