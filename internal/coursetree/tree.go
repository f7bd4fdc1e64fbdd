package coursetree

import (
	"iter"

	"github.com/specialistvlad/courseadvisor/internal/course"
)

type node struct {
	course      course.Course
	left, right *node
}

// Tree is an unbalanced binary search tree of courses. The zero value is an
// empty tree ready for use.
type Tree struct {
	root *node
	size int
}

// New creates an empty tree.
func New() *Tree {
	return &Tree{}
}

// Insert stores c under c.Code. An existing record with the same code is
// replaced entirely; titles and prerequisite lists are never merged. It
// reports whether a new key was added.
func (t *Tree) Insert(c course.Course) bool {
	c = c.Clone()

	link := &t.root
	for *link != nil {
		n := *link
		switch {
		case c.Code < n.course.Code:
			link = &n.left
		case c.Code > n.course.Code:
			link = &n.right
		default:
			n.course = c
			return false
		}
	}
	*link = &node{course: c}
	t.size++
	return true
}

// Lookup returns the course stored under code.
func (t *Tree) Lookup(code string) (course.Course, bool) {
	n := t.root
	for n != nil {
		switch {
		case code < n.course.Code:
			n = n.left
		case code > n.course.Code:
			n = n.right
		default:
			return n.course.Clone(), true
		}
	}
	return course.Course{}, false
}

// Contains reports whether code is present without copying the record.
func (t *Tree) Contains(code string) bool {
	n := t.root
	for n != nil && n.course.Code != code {
		if code < n.course.Code {
			n = n.left
		} else {
			n = n.right
		}
	}
	return n != nil
}

// Clear drops every record. It is safe to call on an already empty tree.
func (t *Tree) Clear() {
	t.root = nil
	t.size = 0
}

// IsEmpty reports whether the tree holds no records.
func (t *Tree) IsEmpty() bool {
	return t.root == nil
}

// Len returns the number of distinct codes stored.
func (t *Tree) Len() int {
	return t.size
}

// All returns the courses in ascending code order. Each call starts a fresh
// traversal; stopping early is allowed.
func (t *Tree) All() iter.Seq[course.Course] {
	return func(yield func(course.Course) bool) {
		var stack []*node
		n := t.root
		for n != nil || len(stack) > 0 {
			for n != nil {
				stack = append(stack, n)
				n = n.left
			}
			n = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n.course.Clone()) {
				return
			}
			n = n.right
		}
	}
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree) Height() int {
	if t.root == nil {
		return 0
	}
	type frame struct {
		n     *node
		depth int
	}
	height := 0
	stack := []frame{{t.root, 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		height = max(height, f.depth)
		if f.n.left != nil {
			stack = append(stack, frame{f.n.left, f.depth + 1})
		}
		if f.n.right != nil {
			stack = append(stack, frame{f.n.right, f.depth + 1})
		}
	}
	return height
}
