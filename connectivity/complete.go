package connectivity

import "sort"

// Complete rebuilds the edge and corner tables from vertex identity. The
// vertex and face tables must already be populated and reciprocal; existing
// edge and corner tables are discarded first. Periodicity that is not encoded
// in the vertex list is lost. Without vertices the result simply carries no
// edges and no corners.
func (conn *Connectivity) Complete() {
	conn.treeToEdge = nil
	conn.ettOffset = nil
	conn.edgeToTree = nil
	conn.edgeToEdge = nil
	conn.treeToCorner = nil
	conn.cttOffset = nil
	conn.cornerToTree = nil
	conn.cornerToCorner = nil
	if conn.vertices == nil {
		return
	}
	conn.completeEdges()
	conn.completeCorners()
}

type treeEdge struct {
	tree int32
	edge int
}

type treeCorner struct {
	tree   int32
	corner int
}

func (conn *Connectivity) completeEdges() {
	numTrees := conn.NumTrees()

	// group edge incidences by their unordered endpoint vertex pair
	groups := map[[2]int32][]treeEdge{}
	for t := int32(0); t < numTrees; t++ {
		for e := 0; e < Edges; e++ {
			v0 := conn.treeToVertex[int(t)*Children+EdgeCorners[e][0]]
			v1 := conn.treeToVertex[int(t)*Children+EdgeCorners[e][1]]
			if v1 < v0 {
				v0, v1 = v1, v0
			}
			key := [2]int32{v0, v1}
			groups[key] = append(groups[key], treeEdge{t, e})
		}
	}

	var buckets [][]treeEdge
	for _, members := range groups {
		if !conn.edgeGroupRecorded(members) {
			continue
		}
		sort.Slice(members, func(i, j int) bool {
			if members[i].tree != members[j].tree {
				return members[i].tree < members[j].tree
			}
			return members[i].edge < members[j].edge
		})
		buckets = append(buckets, members)
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i][0].tree != buckets[j][0].tree {
			return buckets[i][0].tree < buckets[j][0].tree
		}
		return buckets[i][0].edge < buckets[j][0].edge
	})
	if len(buckets) == 0 {
		return
	}

	conn.treeToEdge = make([]int32, numTrees*Edges)
	for i := range conn.treeToEdge {
		conn.treeToEdge[i] = -1
	}
	conn.ettOffset = make([]int32, len(buckets)+1)
	for k, members := range buckets {
		rep := members[0]
		repLow := conn.treeToVertex[int(rep.tree)*Children+EdgeCorners[rep.edge][0]]
		for _, m := range members {
			code := int8(m.edge)
			if conn.treeToVertex[int(m.tree)*Children+EdgeCorners[m.edge][0]] != repLow {
				code += Edges
			}
			conn.edgeToTree = append(conn.edgeToTree, m.tree)
			conn.edgeToEdge = append(conn.edgeToEdge, code)
			conn.treeToEdge[int(m.tree)*Edges+m.edge] = int32(k)
		}
		conn.ettOffset[k+1] = int32(len(conn.edgeToTree))
	}
}

// edgeGroupRecorded decides whether a group of vertex-identical edges forms a
// macro edge worth recording: three or more incidences always do, and so does
// any pair that no single face gluing co-describes.
func (conn *Connectivity) edgeGroupRecorded(members []treeEdge) bool {
	if len(members) < 2 {
		return false
	}
	if len(members) >= 3 {
		return true
	}
	a, b := members[0], members[1]
	return !conn.edgeFaceReachable(a.tree, a.edge, b.tree, b.edge)
}

func (conn *Connectivity) completeCorners() {
	numTrees := conn.NumTrees()

	groups := map[int32][]treeCorner{}
	for t := int32(0); t < numTrees; t++ {
		for c := 0; c < Children; c++ {
			v := conn.treeToVertex[int(t)*Children+c]
			groups[v] = append(groups[v], treeCorner{t, c})
		}
	}

	var buckets [][]treeCorner
	for _, members := range groups {
		if !conn.cornerGroupRecorded(members) {
			continue
		}
		sort.Slice(members, func(i, j int) bool {
			if members[i].tree != members[j].tree {
				return members[i].tree < members[j].tree
			}
			return members[i].corner < members[j].corner
		})
		buckets = append(buckets, members)
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i][0].tree != buckets[j][0].tree {
			return buckets[i][0].tree < buckets[j][0].tree
		}
		return buckets[i][0].corner < buckets[j][0].corner
	})
	if len(buckets) == 0 {
		return
	}

	conn.treeToCorner = make([]int32, numTrees*Children)
	for i := range conn.treeToCorner {
		conn.treeToCorner[i] = -1
	}
	conn.cttOffset = make([]int32, len(buckets)+1)
	for k, members := range buckets {
		for _, m := range members {
			conn.cornerToTree = append(conn.cornerToTree, m.tree)
			conn.cornerToCorner = append(conn.cornerToCorner, int8(m.corner))
			conn.treeToCorner[int(m.tree)*Children+m.corner] = int32(k)
		}
		conn.cttOffset[k+1] = int32(len(conn.cornerToTree))
	}
}

// cornerGroupRecorded decides whether vertex-identical corners form a macro
// corner worth recording: some pair must be reachable neither through a face
// gluing nor through a freshly built macro edge.
func (conn *Connectivity) cornerGroupRecorded(members []treeCorner) bool {
	for i := 0; i < len(members); i++ {
		for j := i + 1; j < len(members); j++ {
			a, b := members[i], members[j]
			if !conn.cornerFaceReachable(a.tree, a.corner, b.tree, b.corner) &&
				!conn.cornerEdgeReachable(a.tree, a.corner, b.tree, b.corner) {
				return true
			}
		}
	}
	return false
}
