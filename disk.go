package wordgrid

import (
	"fmt"
	"io"
	"math/bits"
	"os"

	"golang.org/x/exp/mmap"
)

/* FILE FORMAT
- 32 bits: total size of the encoded index in bytes
- 8 bits: cbits, bits per character
- 8 bits: abits, bits per node address
- 8 bits: wbits, bits per skip count
- 7code: number of words
- 7code: number of nodes
- 7code: number of edges
- for each node, in address order (node 0 is the root):
	- 1 bit: is node final?
	- 7code: number of edges
	- for each edge, sorted by character:
		cbits: character
		wbits: count of words skipped by following this edge
		abits: address of the target node

We define 7code to be an unsigned that can be read the following way:

result = 0
for {
	data = next 8 bits
	result = result << 7 | data & 0x7f
	if data & 0x80 == 0 break
}
*/

const headerBits = 32 + 8 + 8 + 8

// Save writes the index to disk. Returns the number of bytes written
func (idx *Index) Save(filename string) (int64, error) {
	f, err := os.Create(filename)
	if err != nil {
		return 0, err
	}

	n, err := idx.Write(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return n, err
}

// Write encodes the index to w. Returns the number of bytes written
func (idx *Index) Write(wIn io.Writer) (int64, error) {
	var maxChar rune
	maxCount := 0
	for _, node := range idx.nodes {
		for _, edge := range node.edges {
			maxChar = max(maxChar, edge.ch)
			maxCount = max(maxCount, edge.count)
		}
	}

	cbits := uint64(max(bits.Len(uint(maxChar)), 1))
	wbits := uint64(max(bits.Len(uint(maxCount)), 1))
	abits := uint64(max(bits.Len(uint(len(idx.nodes))), 1))

	pos := uint64(headerBits)
	pos += unsignedLength(uint64(idx.numWords)) * 8
	pos += unsignedLength(uint64(len(idx.nodes))) * 8
	pos += unsignedLength(uint64(idx.numEdges)) * 8
	for _, node := range idx.nodes {
		pos++
		pos += unsignedLength(uint64(len(node.edges))) * 8
		pos += uint64(len(node.edges)) * (cbits + wbits + abits)
	}

	size := (pos + 7) / 8
	if size > 0xffffffff {
		return 0, ErrIndexTooLarge
	}

	w := newBitWriter(wIn)
	w.WriteBits(size, 32)
	w.WriteBits(cbits, 8)
	w.WriteBits(abits, 8)
	w.WriteBits(wbits, 8)
	writeUnsigned(w, uint64(idx.numWords))
	writeUnsigned(w, uint64(len(idx.nodes)))
	writeUnsigned(w, uint64(idx.numEdges))

	for _, node := range idx.nodes {
		if node.final {
			w.WriteBits(1, 1)
		} else {
			w.WriteBits(0, 1)
		}

		writeUnsigned(w, uint64(len(node.edges)))
		for _, edge := range node.edges {
			w.WriteBits(uint64(edge.ch), int(cbits))
			w.WriteBits(uint64(edge.count), int(wbits))
			w.WriteBits(uint64(edge.node), int(abits))
		}
	}

	if err := w.Flush(); err != nil {
		return 0, err
	}
	return int64(size), nil
}

// Load memory-maps filename and decodes the index stored in it.
func Load(filename string) (*Index, error) {
	f, err := mmap.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f, 0)
}

// Read decodes an index stored at offset in r.
func Read(r io.ReaderAt, offset int64) (*Index, error) {
	size, err := readUint32(r, offset)
	if err != nil {
		return nil, fmt.Errorf("%w: reading size: %v", ErrCorruptIndex, err)
	}
	if size < headerBits/8 {
		return nil, fmt.Errorf("%w: size %d too small", ErrCorruptIndex, size)
	}
	last := make([]byte, 1)
	if _, err := r.ReadAt(last, offset+int64(size)-1); err != nil {
		return nil, fmt.Errorf("%w: truncated to less than %d bytes", ErrCorruptIndex, size)
	}

	br := newBitSeeker(io.NewSectionReader(r, offset, int64(size)))
	br.Seek(32, io.SeekStart)
	cbits := int64(br.ReadBits(8))
	abits := int64(br.ReadBits(8))
	wbits := int64(br.ReadBits(8))
	numWords := readUnsigned(br)
	numNodes := readUnsigned(br)
	numEdges := readUnsigned(br)

	if br.Err() != nil {
		return nil, fmt.Errorf("%w: reading header: %v", ErrCorruptIndex, br.Err())
	}
	if cbits > 32 || abits > 63 || wbits > 63 || numNodes == 0 || numNodes > uint64(size)*8 || numEdges > uint64(size)*8 {
		return nil, fmt.Errorf("%w: bad header", ErrCorruptIndex)
	}

	idx := &Index{
		nodes:    make([]indexNode, numNodes),
		numWords: int(numWords),
		numEdges: int(numEdges),
	}

	edgesRead := uint64(0)
	for i := range idx.nodes {
		node := &idx.nodes[i]
		node.final = br.ReadBits(1) == 1

		count := readUnsigned(br)
		if br.Err() != nil || count > numEdges-edgesRead {
			return nil, fmt.Errorf("%w: node %d", ErrCorruptIndex, i)
		}
		edgesRead += count

		node.edges = make([]indexEdge, count)
		for j := range node.edges {
			ch := rune(br.ReadBits(cbits))
			skip := int(br.ReadBits(wbits))
			target := br.ReadBits(abits)
			if target >= numNodes || (j > 0 && ch <= node.edges[j-1].ch) {
				return nil, fmt.Errorf("%w: node %d edge %d", ErrCorruptIndex, i, j)
			}
			node.edges[j] = indexEdge{ch: ch, node: int(target), count: skip}
		}
	}

	if br.Err() != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptIndex, br.Err())
	}
	if edgesRead != numEdges {
		return nil, fmt.Errorf("%w: expected %d edges, read %d", ErrCorruptIndex, numEdges, edgesRead)
	}

	return idx, nil
}

func readUint32(r io.ReaderAt, at int64) (uint32, error) {
	data := make([]byte, 4)
	if _, err := r.ReadAt(data, at); err != nil {
		return 0, err
	}
	return (uint32(data[0]) << 24) |
		(uint32(data[1]) << 16) |
		(uint32(data[2]) << 8) |
		(uint32(data[3]) << 0), nil
}

func writeUnsigned(w *bitWriter, n uint64) {
	for i := unsignedLength(n) - 1; i > 0; i-- {
		w.WriteBits((n>>(7*i))&0x7f|0x80, 8)
	}
	w.WriteBits(n&0x7f, 8)
}

func readUnsigned(r *bitSeeker) uint64 {
	var result uint64
	for i := 0; i < 10; i++ {
		d := r.ReadBits(8)
		result = (result << 7) | d&0x7f
		if d&0x80 == 0 {
			break
		}
	}
	return result
}

func unsignedLength(n uint64) uint64 {
	length := uint64(1)
	for n >= 0x80 {
		n >>= 7
		length++
	}
	return length
}
