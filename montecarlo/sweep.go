package montecarlo

import "github.com/golang/glog"

// Point is one (cost, probability) measurement of a sweep.
type Point struct {
	C           float64
	Probability float64
}

// costGrid is the reference grid of cost coefficients: 0.1 through 4.9 in
// steps of 0.1 for finer resolution at low cost, then the integers 5
// through 14.
func costGrid() []float64 {
	var grid []float64
	for j := 0; j < 5; j++ {
		for i := 0; i < 10; i++ {
			c := float64(j) + float64(i)/10
			if c == 0 {
				continue
			}
			grid = append(grid, c)
		}
	}
	for j := 5; j < 15; j++ {
		grid = append(grid, float64(j))
	}
	return grid
}

// Sweep estimates the probability of equilibrium at every coefficient of
// the reference cost grid, using numDraws draws per coefficient.
func Sweep(numDraws, numPlayers int, seed int64) ([]Point, error) {
	grid := costGrid()
	points := make([]Point, 0, len(grid))
	for i, c := range grid {
		e := &Estimator{NumPlayers: numPlayers, Cost: c}
		res, err := e.Run(numDraws, seed+int64(i))
		if err != nil {
			return nil, err
		}
		glog.Infof("c = %.1f: %d of %d draws in equilibrium (p = %.3f)",
			c, res.Equilibria, res.Draws, res.Probability())
		points = append(points, Point{C: c, Probability: res.Probability()})
	}
	return points, nil
}
