// Package analysis implements the Hacker News keyword analysis: loading a
// JSON dump of stories, filtering popular ones, tabulating them, and ranking
// the most frequent title keywords. The steps are plain functions wired into
// a pipeline by BuildPipeline.
package analysis
