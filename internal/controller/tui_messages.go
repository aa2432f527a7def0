package controller

// Message types.
type estimationMsg struct {
	items      []fileItem
	statements int
	flips      int
	deletes    int
	err        error
}

type concurrencyMsg struct {
	threads    int
	shardIndex int
	shards     int
}

type writtenMsg struct {
	count  int
	output string
}

type summaryMsg struct {
	rows      []reportRow
	generated int
	kept      int
	discarded int
}

// List item types.
type fileItem struct {
	path    string
	flips   int
	deletes int
	err     error
}

func (f fileItem) FilterValue() string {
	return f.path
}

func (f fileItem) total() int {
	return f.flips + f.deletes
}

type reportRow struct {
	path      string
	generated int
	kept      int
	discarded int
	err       error
}
