package rope

// accumulateForces rebuilds the acceleration of every particle from the
// active force terms. Damping reads the implicit velocity, so it must run
// before integrate moves the position history.
func (r *Rope) accumulateForces() {
	for i := 0; i < r.buf.Len(); i++ {
		acc := zero3

		if r.params.ApplyGravity {
			acc = acc.Add(r.params.Gravity.Mul(r.params.GravityScale))
		}

		if r.params.ApplyWind && r.wind != nil {
			p := r.buf.Pos[i]
			gust := r.wind.Sample(p.X(), p.Y(), p.Z(), r.time)
			acc = acc.Add(r.params.Wind.Mul(r.params.WindScale * gust))
		}

		if r.params.ApplyDamping {
			v := r.buf.Velocity(i)
			acc = acc.Sub(v.Mul(r.params.DampingFactor * v.Len()))
		}

		r.buf.Acc[i] = acc
	}
}

// integrate advances every unattached particle with a verlet step.
// Attached particles are positioned externally and skipped.
func (r *Rope) integrate(dt float64) {
	dt2 := dt * dt
	for i := 0; i < r.buf.Len(); i++ {
		if r.buf.Attached[i] {
			continue
		}
		cur := r.buf.Pos[i]
		next := cur.Mul(2).Sub(r.buf.Prev[i]).Add(r.buf.Acc[i].Mul(dt2))
		r.buf.Prev[i] = cur
		r.buf.Pos[i] = next
	}
}
