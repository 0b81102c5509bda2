// Package work models client projects and the freelancer proposals bidding
// on them.
package work
