package sorter

import (
	"github.com/hupe1980/algokit/internal/blob"
	"github.com/hupe1980/algokit/resource"
	"github.com/hupe1980/algokit/typekind"
)

// mergeSort acquires its full scratch buffer before touching a single
// element, so a denied reservation leaves the input unmodified.
func mergeSort(buf blob.Buffer, cmp typekind.CompareFunc, ctrl *resource.Controller) error {
	scratch := int64(buf.Count()) * int64(buf.Width())
	if !ctrl.TryAcquireScratch(scratch) {
		return ErrResourceExhausted
	}
	defer ctrl.ReleaseScratch(scratch)

	tmp := make([]byte, scratch)
	mergeRange(buf, 0, buf.Count(), cmp, tmp)
	return nil
}

func mergeRange(buf blob.Buffer, left, right int, cmp typekind.CompareFunc, tmp []byte) {
	if right-left <= 1 {
		return
	}
	mid := left + (right-left)/2
	mergeRange(buf, left, mid, cmp, tmp)
	mergeRange(buf, mid, right, cmp, tmp)
	merge(buf, left, mid, right, cmp, tmp)
}

// merge keeps the left run's element on ties, which is what makes the sort
// stable.
func merge(buf blob.Buffer, left, mid, right int, cmp typekind.CompareFunc, tmp []byte) {
	width := buf.Width()
	i, j, k := left, mid, left
	for i < mid && j < right {
		if cmp(buf.Elem(i), buf.Elem(j)) <= 0 {
			copy(tmp[k*width:(k+1)*width], buf.Elem(i))
			i++
		} else {
			copy(tmp[k*width:(k+1)*width], buf.Elem(j))
			j++
		}
		k++
	}
	for ; i < mid; i, k = i+1, k+1 {
		copy(tmp[k*width:(k+1)*width], buf.Elem(i))
	}
	for ; j < right; j, k = j+1, k+1 {
		copy(tmp[k*width:(k+1)*width], buf.Elem(j))
	}
	copy(buf.Bytes()[left*width:right*width], tmp[left*width:right*width])
}
