// Package replay turns a search.Result trace into terminal frames and plays
// them back one by one.
//
// Each recorded Step becomes one frame showing the node being expanded, the
// frontier and the explored set; bidirectional steps show both sides. A final
// frame shows the path found (or that none was). Frames are pure data, so
// they can be rendered, tested or exported without a terminal.
//
// Colours come from lipgloss and are dropped automatically when the output
// is not a terminal; WithPlain forces unstyled text.
package replay
