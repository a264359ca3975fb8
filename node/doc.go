// File: doc.go
// Role: package-level documentation anchor; see types.go for Node and
// Handle, encompassing_obstacles.go for the concavity tracker, and
// connections.go for the symmetric link/sever helpers.
package node
