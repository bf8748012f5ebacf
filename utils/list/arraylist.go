package list

import (
	"fmt"
	"iter"
)

// List define la colección ordenada que usan las colas del planificador.
type List[T any] interface {
	Add(item T)                          // Añadir un elemento al final de la lista
	All() iter.Seq2[int, T]              // Recorre la lista en orden, de la cabeza a la cola
	Dequeue() (T, error)                 // Eliminar y devolver el primer elemento de la lista
	First() (T, error)                   // Devuelve el primer elemento sin sacarlo
	ForEach(callback func(T))            // A cada elemento de la lista se le va aplicar la función que le pase
	IsEmpty() bool                       // Indica si la lista no tiene elementos
	RemoveWhere(match func(T) bool) bool // Elimina el primer elemento que cumple el predicado
	Size() int                           // Retornar el tamaño de la lista
}

// ArrayList implementa List sobre un slice.
//
// No es segura para uso concurrente: cada simulación es dueña de sus colas y las
// modifica desde una sola goroutine.
type ArrayList[T any] struct {
	items []T
}

// Add inserta un elemento al final de la lista.
//
// Ejemplo:
//
//	func main() {
//		list := &ArrayList[int]{}
//		list.Add(10)
//		list.Add(20)
//	}
func (list *ArrayList[T]) Add(item T) {
	list.items = append(list.items, item)
}

// All devuelve un iterador sobre los elementos en orden de llegada.
// La lista no debe modificarse mientras se la recorre.
//
// Ejemplo:
//
//	for i, value := range list.All() {
//		fmt.Println(i, value)
//	}
func (list *ArrayList[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range list.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Dequeue elimina y devuelve el primer elemento de la cola.
// En caso de que la lista se encuentre vacía retorna el valor "cero" del tipo T y un error.
//
// Ejemplo:
//
//	func main() {
//		numbers := &list.ArrayList[int]{}
//		numbers.Add(10)
//		numbers.Add(20)
//		value, _ := numbers.Dequeue()
//		fmt.Println("Valor: ", value) //output: 10
//	}
func (list *ArrayList[T]) Dequeue() (T, error) {
	if len(list.items) == 0 {
		var zero T
		return zero, fmt.Errorf("list is empty")
	}
	value := list.items[0]
	var zero T
	list.items[0] = zero // no retener referencias en el arreglo subyacente
	list.items = list.items[1:]
	return value, nil
}

// First devuelve la cabeza de la lista sin removerla.
func (list *ArrayList[T]) First() (T, error) {
	if len(list.items) == 0 {
		var zero T
		return zero, fmt.Errorf("list is empty")
	}
	return list.items[0], nil
}

// ForEach a cada elemento de la lista se va a aplicar la función que le pase.
//
// Ejemplo
//
//	list.ForEach(func(number int) {
//		fmt.Println("Valor:", number)
//	})
func (list *ArrayList[T]) ForEach(callback func(T)) {
	for _, item := range list.items {
		callback(item)
	}
}

// IsEmpty indica si la lista está vacía.
func (list *ArrayList[T]) IsEmpty() bool {
	return len(list.items) == 0
}

// RemoveWhere elimina el primer elemento que cumple con match y avisa si encontró alguno.
func (list *ArrayList[T]) RemoveWhere(match func(T) bool) bool {
	for i, item := range list.items {
		if match(item) {
			list.items = append(list.items[:i], list.items[i+1:]...)
			return true
		}
	}
	return false
}

// Size devuelve el tamaño de la lista.
func (list *ArrayList[T]) Size() int {
	return len(list.items)
}
