// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package vine grows branching vines over arbitrary collision geometry.

A [Graph] is a forest of [Root]s grown from one seed position. Each Root is
an ordered list of [Node]s produced one step at a time by a [Stepper], which
blends a primary growth direction with randomness, gravity and adhesion to
the nearest surface reported by an [Oracle]. Roots climb while they are
within adhesion range of a surface and float otherwise; a root that floats
for too long dies, and the total number of roots in a Graph is capped.

A [Grower] drives the Stepper cooperatively over all active roots in bounded
batches, so growth can be progressively visualized and canceled between
steps. Once growth has finished, the mesh package converts every Root into a
tapered branch tube and a leaf mesh, and merges them into the Graph's
[Graph.BranchMesh] and [Graph.LeafMesh].

Growth is deterministic: given the same [Profile], seed for [NewRand] and
oracle responses, the node sequences and meshes are identical.
*/
package vine
