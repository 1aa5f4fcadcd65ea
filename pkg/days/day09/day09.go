// Package day09 solves "Disk Fragmenter": compacting files on a disk
// described by a dense disk map.
package day09

import (
	"strings"

	"github.com/matzehuels/advent/pkg/errors"
)

// Block holds a file id, or Free.
type Block int

// Free marks an empty block.
const Free Block = -1

// Disk is a sequence of blocks.
type Disk []Block

// File is a contiguous run of blocks sharing one id.
type File struct {
	ID    Block
	Start int
	Size  int
}

// ParseMap expands a disk map: digits alternate between file lengths and
// free-space lengths, and files are numbered from 0 in order.
func ParseMap(input string) (Disk, error) {
	input = strings.TrimSpace(input)
	var d Disk
	id := Block(0)
	for i := range len(input) {
		c := input[i]
		if c < '0' || c > '9' {
			return nil, errors.New(errors.ErrCodeInvalidInput, "disk map position %d: %q is not a digit", i+1, c)
		}
		b := Free
		if i%2 == 0 {
			b = id
			id++
		}
		for range int(c - '0') {
			d = append(d, b)
		}
	}
	return d, nil
}

// ParseBlocks reads the rendering produced by String. Only ids below 10
// can be read back.
func ParseBlocks(s string) (Disk, error) {
	s = strings.TrimSpace(s)
	d := make(Disk, len(s))
	for i := range len(s) {
		switch c := s[i]; {
		case c == '.':
			d[i] = Free
		case c >= '0' && c <= '9':
			d[i] = Block(c - '0')
		default:
			return nil, errors.New(errors.ErrCodeInvalidInput, "block %d: unexpected %q", i, c)
		}
	}
	return d, nil
}

// String renders free blocks as '.', ids below 10 as their digit and
// larger ids as 'X'.
func (d Disk) String() string {
	var b strings.Builder
	b.Grow(len(d))
	for _, blk := range d {
		switch {
		case blk == Free:
			b.WriteByte('.')
		case blk < 10:
			b.WriteByte(byte('0' + blk))
		default:
			b.WriteByte('X')
		}
	}
	return b.String()
}

// Compact moves file blocks one at a time from the end of the disk into
// the leftmost free block, then drops the trailing free space.
func Compact(d Disk) Disk {
	left, right := 0, len(d)-1
	for {
		for left < len(d) && d[left] != Free {
			left++
		}
		for right >= 0 && d[right] == Free {
			right--
		}
		if left >= right {
			break
		}
		d[left], d[right] = d[right], Free
	}
	end := len(d)
	for end > 0 && d[end-1] == Free {
		end--
	}
	return d[:end]
}

// Files lists the files on d in position order.
func Files(d Disk) []File {
	var files []File
	for i := 0; i < len(d); {
		if d[i] == Free {
			i++
			continue
		}
		f := File{ID: d[i], Start: i}
		for i < len(d) && d[i] == f.ID {
			f.Size++
			i++
		}
		files = append(files, f)
	}
	return files
}

// FindFreeSpace returns the start of the leftmost run of at least size
// free blocks.
func FindFreeSpace(d Disk, size int) (int, bool) {
	run := 0
	for i, blk := range d {
		if blk != Free {
			run = 0
			continue
		}
		run++
		if run == size {
			return i - size + 1, true
		}
	}
	return 0, false
}

// MoveBlocks moves size blocks from src to dst, freeing the source.
func MoveBlocks(d Disk, src, dst, size int) {
	for i := range size {
		d[dst+i] = d[src+i]
		d[src+i] = Free
	}
}

// Defragment moves whole files, highest id first, into the leftmost free
// run that fits them and lies before the file. Each file is tried once.
func Defragment(d Disk) {
	files := Files(d)
	for i := len(files) - 1; i >= 0; i-- {
		f := files[i]
		if dst, ok := FindFreeSpace(d[:f.Start], f.Size); ok {
			MoveBlocks(d, f.Start, dst, f.Size)
		}
	}
}

// Checksum sums position times file id over every file block.
func Checksum(d Disk) int {
	sum := 0
	for i, blk := range d {
		if blk != Free {
			sum += i * int(blk)
		}
	}
	return sum
}

// Part1 compacts block by block and returns the checksum.
func Part1(input string) (int, error) {
	d, err := ParseMap(input)
	if err != nil {
		return 0, err
	}
	return Checksum(Compact(d)), nil
}

// Part2 compacts whole files and returns the checksum.
func Part2(input string) (int, error) {
	d, err := ParseMap(input)
	if err != nil {
		return 0, err
	}
	Defragment(d)
	return Checksum(d), nil
}
