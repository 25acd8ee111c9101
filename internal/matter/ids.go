package matter

import "fmt"

// NodeID is a 64-bit identifier for a commissioned Matter device. The
// Matter server addresses every per-device command by node id.
type NodeID uint64

// EndpointID is a 16-bit identifier for a logical sub-unit of a device
// (endpoint 0 is the root endpoint).
type EndpointID uint16

// ClusterID is a 32-bit identifier for a functional cluster, e.g.
// OccupancySensing (0x0406).
type ClusterID uint32

// AttributeID is a 32-bit identifier for one attribute within a cluster.
type AttributeID uint32

// AttributePath addresses a single attribute instance on a node.
type AttributePath struct {
	Endpoint  EndpointID
	Cluster   ClusterID
	Attribute AttributeID
}

// String renders the path in the server's wire form,
// "endpoint/cluster/attribute" with decimal ids.
func (p AttributePath) String() string {
	return fmt.Sprintf("%d/%d/%d", p.Endpoint, p.Cluster, p.Attribute)
}
