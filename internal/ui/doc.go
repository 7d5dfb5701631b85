// Package ui draws the step-by-step progress of a wifiqr run: an intro
// line, one spinner per stage, and either an outro or a cancel message.
//
// When the output is not a terminal the spinner and colors are disabled
// and only the completed stages are printed.
package ui
