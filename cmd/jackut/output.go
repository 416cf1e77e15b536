package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ersonp/jackut/internal/application/script"
)

func printLine(cmd *cobra.Command, s string) {
	fmt.Fprintln(cmd.OutOrStdout(), s)
}

func printList(cmd *cobra.Command, items []string, err error) error {
	if err != nil {
		return err
	}
	printLine(cmd, script.FormatList(items))
	return nil
}

func printBool(cmd *cobra.Command, ok bool, err error) error {
	if err != nil {
		return err
	}
	printLine(cmd, strconv.FormatBool(ok))
	return nil
}

func printText(cmd *cobra.Command, s string, err error) error {
	if err != nil {
		return err
	}
	printLine(cmd, s)
	return nil
}
