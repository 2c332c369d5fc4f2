/*
 *	Copyright 2023 Jan Pfeifer
 *
 *	Licensed under the Apache License, Version 2.0 (the "License");
 *	you may not use this file except in compliance with the License.
 *	You may obtain a copy of the License at
 *
 *	http://www.apache.org/licenses/LICENSE-2.0
 *
 *	Unless required by applicable law or agreed to in writing, software
 *	distributed under the License is distributed on an "AS IS" BASIS,
 *	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *	See the License for the specific language governing permissions and
 *	limitations under the License.
 */

package shapes

import (
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShape(t *testing.T) {
	invalidShape := Invalid()
	assert.False(t, invalidShape.Ok())
	require.Error(t, invalidShape.Check())

	shape0 := Make(dtypes.Float64)
	assert.True(t, shape0.Ok())
	assert.True(t, shape0.IsScalar())
	assert.Equal(t, 0, shape0.Rank())
	assert.Equal(t, 1, shape0.Size())
	assert.Equal(t, 8, int(shape0.Memory()))

	shape1 := Make(dtypes.Float32, 4, 3, 2)
	assert.False(t, shape1.IsScalar())
	assert.Equal(t, 3, shape1.Rank())
	assert.Equal(t, 4*3*2, shape1.Size())
	assert.Equal(t, 4*4*3*2, int(shape1.Memory()))
	require.NoError(t, shape1.Check())

	// Quantized activations: one byte per element, so the byte size is the product of the shape.
	shape2 := Make(dtypes.Uint8, 1, 112, 112, 32)
	assert.Equal(t, 112*112*32, int(shape2.Memory()))

	assert.True(t, shape1.Equal(shape1.Clone()))
	assert.False(t, shape1.Equal(Make(dtypes.Float32, 4, 3)))
	assert.False(t, shape1.Equal(Make(dtypes.Int32, 4, 3, 2)))
}

func TestCheck(t *testing.T) {
	require.Error(t, Make(dtypes.Float32, 1, -1, 3).Check())
	require.NoError(t, Make(dtypes.Int8, 1, 0).Check())
}

func TestDim(t *testing.T) {
	shape := Make(dtypes.Float32, 4, 3, 2)
	assert.Equal(t, 4, shape.Dim(0))
	assert.Equal(t, 2, shape.Dim(2))
	assert.Equal(t, 4, shape.Dim(-3))
	assert.Equal(t, 2, shape.Dim(-1))
	assert.Panics(t, func() { _ = shape.Dim(3) })
	assert.Panics(t, func() { _ = shape.Dim(-4) })
}
